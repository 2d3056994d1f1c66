package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vocadrill/internal/domain"
	"vocadrill/internal/messages"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText interprets free text according to the stored conversation
// state. It is the last route: every command has already had its chance.
func (h *Handler) handleText(c tele.Context) error {
	lang := userLanguage(c)
	ctx := context.Background()
	chatID := c.Chat().ID

	raw, err := h.sessions.GetState(ctx, chatID)
	if err != nil {
		return h.fail(c, lang, "failed to read conversation state", err)
	}
	if raw == "" {
		// Nothing stored for this chat, or the session expired.
		return c.Send(messages.Get(lang, "errors.use_menu"), mainMenuMarkup())
	}

	state, err := domain.ParseState(raw)
	if err != nil {
		return h.recoverCorruptState(c, lang, raw)
	}

	switch state {
	case domain.StateIdle:
		return c.Send(messages.Get(lang, "errors.use_menu"), mainMenuMarkup())
	case domain.StateAwaitingWordPair:
		return h.handleWordPair(c, lang)
	case domain.StateTraining:
		return h.handleAnswer(c, lang)
	case domain.StateSwitchLanguage:
		return h.handleLanguageChoice(c)
	}
	return nil
}

// recoverCorruptState drops the unrecognized stored value and every other
// ephemeral key, then asks the user to restart.
func (h *Handler) recoverCorruptState(c tele.Context, lang, raw string) error {
	ctx := context.Background()
	chatID := c.Chat().ID

	h.logger.Warn("clearing unrecognized conversation state",
		zap.String("state", raw),
		zap.Int64("chat_id", chatID),
	)

	if err := h.sessions.Clear(ctx, chatID); err != nil {
		return h.fail(c, lang, "failed to clear corrupt state", err)
	}
	if err := h.sessions.ClearClue(ctx, chatID); err != nil {
		return h.fail(c, lang, "failed to clear clue counter", err)
	}

	return c.Send(messages.Get(lang, "errors.restart"), tele.ModeMarkdownV2, mainMenuMarkup())
}

// handleWordPair parses and stores the pair the user was asked for. A
// validation failure keeps the chat in AwaitingWordPair so the user can
// retry; success parks it in Idle.
func (h *Handler) handleWordPair(c tele.Context, lang string) error {
	user := currentUser(c)
	ctx := context.Background()

	pair, created, err := h.words.AddWordPair(user.ID, c.Text())

	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		reply := fmt.Sprintf(
			messages.Get(lang, "add_word.invalid_format"),
			escapeMarkdown(validation.Reason),
		)
		return c.Send(reply, tele.ModeMarkdownV2, cancelMarkup())
	}
	if err != nil {
		return h.fail(c, lang, "failed to save word pair", err)
	}

	if !created {
		// Idempotent create: the duplicate is informational, the user
		// may keep adding pairs.
		return c.Send(messages.Get(lang, "add_word.exists"), tele.ModeMarkdownV2, cancelMarkup())
	}

	h.logger.Info("word pair saved",
		zap.Int64("user_id", user.ID),
		zap.String("left", pair.LeftWord),
	)

	if err := h.sessions.SetState(ctx, c.Chat().ID, domain.StateIdle); err != nil {
		return h.fail(c, lang, "failed to update state", err)
	}
	return c.Send(messages.Get(lang, "add_word.saved"), tele.ModeMarkdownV2, mainMenuMarkup())
}

// handleAnswer judges the answer and always chains to the next word.
func (h *Handler) handleAnswer(c tele.Context, lang string) error {
	ctx := context.Background()

	result, err := h.training.CheckAnswer(ctx, c.Chat().ID, c.Text())
	if errors.Is(err, domain.ErrSessionExpired) {
		return c.Send(messages.Get(lang, "training.session_expired"), tele.ModeMarkdownV2, mainMenuMarkup())
	}
	if err != nil {
		return h.fail(c, lang, "failed to check answer", err)
	}

	var reply string
	switch {
	case result.Correct && len(result.Others) > 0:
		reply = fmt.Sprintf(
			messages.Get(lang, "training.other_translations"),
			escapeMarkdown(strings.Join(result.Others, ", ")),
		)
	case result.Correct:
		reply = messages.Get(lang, "training.correct")
	default:
		reply = fmt.Sprintf(
			messages.Get(lang, "training.wrong"),
			escapeMarkdown(strings.Join(result.All, ", ")),
		)
	}

	if err := c.Send(reply, tele.ModeMarkdownV2); err != nil {
		return err
	}
	return h.handleTrain(c)
}

// handleLanguageChoice validates the picked language before persisting it.
// An unsupported choice keeps the chat in SwitchingLanguage.
func (h *Handler) handleLanguageChoice(c tele.Context) error {
	user := currentUser(c)
	choice := strings.TrimSpace(c.Text())
	ctx := context.Background()

	if !messages.IsSupported(choice) {
		lang := userLanguage(c)
		return c.Send(messages.Get(lang, "errors.language_unsupported"), tele.ModeMarkdownV2, languageMarkup())
	}

	if err := h.languages.Switch(user.ID, choice); err != nil {
		return h.fail(c, userLanguage(c), "failed to switch language", err)
	}

	if err := h.sessions.SetState(ctx, c.Chat().ID, domain.StateIdle); err != nil {
		return h.fail(c, choice, "failed to update state", err)
	}

	// Reply in the language that was just chosen.
	return c.Send(messages.Get(choice, "language_changed"), tele.ModeMarkdownV2, mainMenuMarkup())
}
