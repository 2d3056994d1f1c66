package messages

var catalogs = map[string]map[string]string{
	"en": {
		"welcome":                     "Hello, %s\\! I am a word trainer bot\\. Add word pairs and drill them until they stick\\.",
		"main_menu":                   "Main menu. Choose an action:",
		"wait_language":               "Choose a language:",
		"language_changed":            "Language changed\\!",
		"add_word.prompt":             "Send a pair in the format: `word - translation`",
		"add_word.saved":              "Saved\\! Add another pair or go train\\.",
		"add_word.exists":             "You already have this pair\\.",
		"add_word.invalid_format":     "That does not look like a pair: %s",
		"training.no_words":           "You have no words yet\\. Add some pairs first\\.",
		"training.word_prompt":        "Translate: *%s*",
		"training.correct":            "Correct\\!",
		"training.other_translations": "Correct\\! Other accepted answers: %s",
		"training.wrong":              "Not quite\\. Accepted answers: %s",
		"training.session_expired":    "The training session expired\\. Start a new one from the menu\\.",
		"training.clue":               "Clue: %s",
		"errors.use_menu":             "Use the menu buttons to talk to me.",
		"errors.restart":              "Something went wrong with your session\\. Press /start to begin again\\.",
		"errors.clue_error":           "Clues are only available during training.",
		"errors.language_unsupported": "I do not speak that language yet\\. Pick one from the keyboard\\.",
		"errors.internal":             "Something went wrong. Please try again later.",
	},
	"ru": {
		"welcome":                     "Привет, %s\\! Я бот\\-тренажёр слов\\. Добавляй пары слов и повторяй их, пока не запомнишь\\.",
		"main_menu":                   "Главное меню. Выберите действие:",
		"wait_language":               "Выберите язык:",
		"language_changed":            "Язык изменён\\!",
		"add_word.prompt":             "Отправьте пару в формате: `слово - перевод`",
		"add_word.saved":              "Сохранено\\! Добавьте ещё пару или начните тренировку\\.",
		"add_word.exists":             "Такая пара у вас уже есть\\.",
		"add_word.invalid_format":     "Это не похоже на пару слов: %s",
		"training.no_words":           "У вас пока нет слов\\. Сначала добавьте пары\\.",
		"training.word_prompt":        "Переведите: *%s*",
		"training.correct":            "Верно\\!",
		"training.other_translations": "Верно\\! Другие допустимые ответы: %s",
		"training.wrong":              "Не совсем\\. Правильные ответы: %s",
		"training.session_expired":    "Сессия тренировки истекла\\. Начните новую из меню\\.",
		"training.clue":               "Подсказка: %s",
		"errors.use_menu":             "Используйте кнопки меню.",
		"errors.restart":              "С вашей сессией что\\-то не так\\. Нажмите /start, чтобы начать заново\\.",
		"errors.clue_error":           "Подсказки доступны только во время тренировки.",
		"errors.language_unsupported": "Я пока не говорю на этом языке\\. Выберите один из списка\\.",
		"errors.internal":             "Что-то пошло не так. Попробуйте позже.",
	},
	"uk": {
		"welcome":                     "Привіт, %s\\! Я бот\\-тренажер слів\\. Додавай пари слів і повторюй їх, доки не запам'ятаєш\\.",
		"main_menu":                   "Головне меню. Оберіть дію:",
		"wait_language":               "Оберіть мову:",
		"language_changed":            "Мову змінено\\!",
		"add_word.prompt":             "Надішліть пару у форматі: `слово - переклад`",
		"add_word.saved":              "Збережено\\! Додайте ще пару або почніть тренування\\.",
		"add_word.exists":             "Така пара у вас вже є\\.",
		"add_word.invalid_format":     "Це не схоже на пару слів: %s",
		"training.no_words":           "У вас поки немає слів\\. Спочатку додайте пари\\.",
		"training.word_prompt":        "Перекладіть: *%s*",
		"training.correct":            "Вірно\\!",
		"training.other_translations": "Вірно\\! Інші прийнятні відповіді: %s",
		"training.wrong":              "Не зовсім\\. Правильні відповіді: %s",
		"training.session_expired":    "Сесія тренування завершилася\\. Почніть нову з меню\\.",
		"training.clue":               "Підказка: %s",
		"errors.use_menu":             "Користуйтеся кнопками меню.",
		"errors.restart":              "Із вашою сесією щось не так\\. Натисніть /start, щоб почати знову\\.",
		"errors.clue_error":           "Підказки доступні лише під час тренування.",
		"errors.language_unsupported": "Я поки не розмовляю цією мовою\\. Оберіть одну зі списку\\.",
		"errors.internal":             "Щось пішло не так. Спробуйте пізніше.",
	},
}
