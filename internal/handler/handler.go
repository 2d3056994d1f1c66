package handler

import (
	"regexp"

	"vocadrill/internal/domain"
	"vocadrill/internal/messages"
	"vocadrill/internal/service"
	"vocadrill/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler wires incoming Telegram updates to the drill engine. Dispatch
// runs through an ordered route table: commands are global interrupts that
// win over the stored conversation state, and the state-driven free-text
// route is the final catch-all.
type Handler struct {
	bot       *tele.Bot
	words     *service.WordService
	training  *service.TrainingService
	languages *service.LanguageService
	sessions  session.Store
	logger    *zap.Logger

	routes []route
}

// route pairs a predicate with its handler. The first match wins.
type route struct {
	match  func(text string) bool
	handle tele.HandlerFunc
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	words *service.WordService,
	training *service.TrainingService,
	languages *service.LanguageService,
	sessions session.Store,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		bot:       bot,
		words:     words,
		training:  training,
		languages: languages,
		sessions:  sessions,
		logger:    logger,
	}

	h.routes = []route{
		{cmdStart.Matches, h.handleStart},
		{cmdBackToMenu.Matches, h.handleBackToMenu},
		{cmdAddWord.Matches, h.handleAddWord},
		{cmdTrain.Matches, h.handleTrain},
		{cmdClue.Matches, h.handleClue},
		{cmdSwitchLanguage.Matches, h.handleSwitchLanguage},
		{func(string) bool { return true }, h.handleText},
	}

	return h
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle(tele.OnText, h.dispatch)
}

// dispatch walks the route table and runs the first matching handler.
func (h *Handler) dispatch(c tele.Context) error {
	text := c.Text()
	for _, r := range h.routes {
		if r.match(text) {
			return r.handle(c)
		}
	}
	return nil
}

// currentUser returns the user stashed by the middleware.
func currentUser(c tele.Context) *domain.User {
	user, _ := c.Get("user").(*domain.User)
	return user
}

// userLanguage resolves the reply language from the persisted user row
// loaded for this update. There is no process-wide language.
func userLanguage(c tele.Context) string {
	user := currentUser(c)
	if user == nil {
		return messages.DefaultLanguage
	}
	return messages.Resolve(user.Language)
}

// fail logs the failure and sends the generic error reply.
func (h *Handler) fail(c tele.Context, lang, msg string, err error) error {
	h.logger.Error(msg,
		zap.Error(err),
		zap.Int64("chat_id", c.Chat().ID),
	)
	return c.Send(messages.Get(lang, "errors.internal"), mainMenuMarkup())
}

var markdownSpecial = regexp.MustCompile("([_*\\[\\]()~`>#+=|{}.!-])")

// escapeMarkdown escapes MarkdownV2 special characters in dynamic text.
func escapeMarkdown(text string) string {
	return markdownSpecial.ReplaceAllString(text, `\$1`)
}
