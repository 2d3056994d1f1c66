package handler

import "strings"

// Command is a bot action reachable as a slash command and, for most, as a
// reply-keyboard button. Matching covers both text channels so the command
// form and the display label cannot drift apart.
type Command struct {
	Name       string
	ButtonText string
}

var (
	cmdStart          = Command{Name: "start"}
	cmdAddWord        = Command{Name: "add", ButtonText: "➕ Add word"}
	cmdTrain          = Command{Name: "train", ButtonText: "🎯 Train"}
	cmdClue           = Command{Name: "clue", ButtonText: "💡 Clue"}
	cmdBackToMenu     = Command{Name: "break", ButtonText: "🔙 Back to menu"}
	cmdSwitchLanguage = Command{Name: "switch_language", ButtonText: "🌐 Switch language"}
)

// Matches reports whether the message text invokes this command, either as
// "/name" or as the button label.
func (c Command) Matches(text string) bool {
	if strings.HasPrefix(text, "/") {
		return strings.TrimPrefix(text, "/") == c.Name
	}
	return c.ButtonText != "" && text == c.ButtonText
}
