package handler

import (
	"context"
	"fmt"

	"vocadrill/internal/domain"
	"vocadrill/internal/messages"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart resets the chat to the main menu.
func (h *Handler) handleStart(c tele.Context) error {
	lang := userLanguage(c)
	ctx := context.Background()

	h.logger.Info("user started bot",
		zap.Int64("chat_id", c.Chat().ID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.sessions.SetState(ctx, c.Chat().ID, domain.StateIdle); err != nil {
		return h.fail(c, lang, "failed to reset state", err)
	}

	welcome := fmt.Sprintf(messages.Get(lang, "welcome"), escapeMarkdown(c.Sender().FirstName))
	return c.Send(welcome, tele.ModeMarkdownV2, mainMenuMarkup())
}

// handleBackToMenu drops all ephemeral chat data and shows the menu.
func (h *Handler) handleBackToMenu(c tele.Context) error {
	lang := userLanguage(c)
	ctx := context.Background()
	chatID := c.Chat().ID

	if err := h.sessions.Clear(ctx, chatID); err != nil {
		return h.fail(c, lang, "failed to clear session", err)
	}
	if err := h.sessions.ClearClue(ctx, chatID); err != nil {
		return h.fail(c, lang, "failed to clear clue counter", err)
	}

	return c.Send(messages.Get(lang, "main_menu"), mainMenuMarkup())
}

// handleAddWord prompts for a word pair.
func (h *Handler) handleAddWord(c tele.Context) error {
	lang := userLanguage(c)
	ctx := context.Background()

	if err := h.sessions.SetState(ctx, c.Chat().ID, domain.StateAwaitingWordPair); err != nil {
		return h.fail(c, lang, "failed to update state", err)
	}

	return c.Send(messages.Get(lang, "add_word.prompt"), tele.ModeMarkdownV2, cancelMarkup())
}

// handleSwitchLanguage asks the user to pick an interface language.
func (h *Handler) handleSwitchLanguage(c tele.Context) error {
	lang := userLanguage(c)
	ctx := context.Background()

	if err := h.sessions.SetState(ctx, c.Chat().ID, domain.StateSwitchLanguage); err != nil {
		return h.fail(c, lang, "failed to update state", err)
	}

	return c.Send(messages.Get(lang, "wait_language"), tele.ModeMarkdownV2, languageMarkup())
}
