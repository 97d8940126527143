package telegram

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/stretchr/testify/suite"

	"github.com/18F/cert-registry/bot"
)

type ClientSuite struct {
	suite.Suite

	srv    *httptest.Server
	client *Client

	mu       sync.Mutex
	requests map[string]url.Values
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.requests = map[string]url.Values{}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]

		s.mu.Lock()
		s.requests[method] = r.PostForm
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch method {
		case "getMe":
			fmt.Fprint(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Registry","username":"registry_bot"}}`)
		case "getWebhookInfo":
			fmt.Fprint(w, `{"ok":true,"result":{"url":"https://example.org/webhook","pending_update_count":2}}`)
		default:
			fmt.Fprint(w, `{"ok":true,"result":true}`)
		}
	}))

	var err error
	s.client, err = NewClientWithEndpoint("test-token", s.srv.URL+"/bot%s/%s", s.srv.Client(), lagertest.NewTestLogger("telegram-test"))
	s.Require().NoError(err)
}

func (s *ClientSuite) TearDownTest() {
	s.srv.Close()
}

func (s *ClientSuite) form(method string) url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[method]
}

func (s *ClientSuite) TestSendMessageWithKeyboard() {
	keyboard := bot.Keyboard{
		{{Text: "Show", Action: bot.ShowCertificate("CERT-1")}},
	}

	s.NoError(s.client.SendMessage(42, "<b>hello</b>", keyboard))

	form := s.form("sendMessage")
	s.Equal("42", form.Get("chat_id"))
	s.Equal("<b>hello</b>", form.Get("text"))
	s.Equal("HTML", form.Get("parse_mode"))
	s.Contains(form.Get("reply_markup"), `"callback_data":"`+bot.ShowCertificate("CERT-1").Data()+`"`)
}

func (s *ClientSuite) TestSendMessageWithoutKeyboard() {
	s.NoError(s.client.SendMessage(42, "plain", nil))
	s.Empty(s.form("sendMessage").Get("reply_markup"))
}

func (s *ClientSuite) TestEditMessageText() {
	s.NoError(s.client.EditMessageText(42, 7, "edited", bot.Keyboard{}))

	form := s.form("editMessageText")
	s.Equal("42", form.Get("chat_id"))
	s.Equal("7", form.Get("message_id"))
	s.Equal("edited", form.Get("text"))
}

func (s *ClientSuite) TestAnswerCallbackQuery() {
	s.NoError(s.client.AnswerCallbackQuery("cb-1", "Done"))

	form := s.form("answerCallbackQuery")
	s.Equal("cb-1", form.Get("callback_query_id"))
	s.Equal("Done", form.Get("text"))
}

func (s *ClientSuite) TestWebhook() {
	s.NoError(s.client.Ping())
	s.NoError(s.client.SetWebhook("https://example.org/webhook"))
	s.Equal("https://example.org/webhook", s.form("setWebhook").Get("url"))

	info, err := s.client.WebhookInfo()
	s.NoError(err)
	s.Equal("https://example.org/webhook", info.URL)
	s.Equal(2, info.PendingUpdateCount)
}

func (s *ClientSuite) TestDisabled() {
	var gateway GatewayIface = Disabled{}
	s.ErrorIs(gateway.SendMessage(1, "text", nil), ErrDisabled)
	s.ErrorIs(gateway.Ping(), ErrDisabled)
}
