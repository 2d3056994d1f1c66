package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vocadrill/internal/domain"
	"vocadrill/internal/messages"

	tele "gopkg.in/telebot.v3"
)

// handleTrain starts a drill session, or advances it to the next word. It
// is invoked both by the train command and as the chain step after every
// judged answer.
func (h *Handler) handleTrain(c tele.Context) error {
	user := currentUser(c)
	lang := userLanguage(c)
	ctx := context.Background()

	word, err := h.training.StartSession(ctx, c.Chat().ID, user.ID)
	if errors.Is(err, domain.ErrNoWords) {
		return c.Send(messages.Get(lang, "training.no_words"), tele.ModeMarkdownV2, mainMenuMarkup())
	}
	if err != nil {
		return h.fail(c, lang, "failed to start training session", err)
	}

	prompt := fmt.Sprintf(messages.Get(lang, "training.word_prompt"), escapeMarkdown(word))
	return c.Send(prompt, tele.ModeMarkdownV2, trainingMarkup())
}

// handleClue reveals one more letter of the current word.
func (h *Handler) handleClue(c tele.Context) error {
	lang := userLanguage(c)
	ctx := context.Background()

	clue, err := h.training.RequestClue(ctx, c.Chat().ID)
	switch {
	case errors.Is(err, domain.ErrStateMismatch):
		return c.Send(messages.Get(lang, "errors.clue_error"), mainMenuMarkup())
	case errors.Is(err, domain.ErrSessionExpired):
		// The translation list is gone; just draw a fresh word.
		return h.handleTrain(c)
	case err != nil:
		return h.fail(c, lang, "failed to build clue", err)
	}

	if clue.Exhausted {
		// Every letter would be revealed: show the answer and move on.
		reveal := fmt.Sprintf(
			messages.Get(lang, "training.wrong"),
			escapeMarkdown(strings.Join(clue.All, ", ")),
		)
		if err := c.Send(reveal, tele.ModeMarkdownV2); err != nil {
			return err
		}
		return h.handleTrain(c)
	}

	masked := fmt.Sprintf(messages.Get(lang, "training.clue"), escapeMarkdown(clue.Masked))
	return c.Send(masked, tele.ModeMarkdownV2, trainingMarkup())
}
