package handler

import (
	"vocadrill/internal/messages"

	tele "gopkg.in/telebot.v3"
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(cmdAddWord.ButtonText), menu.Text(cmdTrain.ButtonText)),
		menu.Row(menu.Text(cmdSwitchLanguage.ButtonText)),
	)
	return menu
}

// cancelMarkup returns a keyboard with only the back-to-menu button
func cancelMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(menu.Row(menu.Text(cmdBackToMenu.ButtonText)))
	return menu
}

// trainingMarkup returns the keyboard shown while a word is in flight
func trainingMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(menu.Row(menu.Text(cmdBackToMenu.ButtonText), menu.Text(cmdClue.ButtonText)))
	return menu
}

// languageMarkup returns one button per supported language
func languageMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	buttons := make([]tele.Btn, 0, len(messages.SupportedLanguages))
	for _, language := range messages.SupportedLanguages {
		buttons = append(buttons, menu.Text(language))
	}
	menu.Reply(menu.Row(buttons...))
	return menu
}
