package lang

import "fmt"

type MessageID string

const (
	StartGreeting MessageID = "start.greeting"
	StartButton   MessageID = "start.button"
	HelpText      MessageID = "help.text"
	CommandStart  MessageID = "command.start"
	CommandHelp   MessageID = "command.help"
	MenuButton    MessageID = "menu.button"
)

const fallback = "en"

var messages = map[MessageID]map[string]string{
	StartGreeting: {
		"ru": "Привет, %s! 👋\n\n" +
			"Добро пожаловать в трекер привычек!\n\n" +
			"Нажмите на кнопку ниже, чтобы открыть приложение и начать отслеживать свои привычки.",
		"en": "Hi, %s! 👋\n\n" +
			"Welcome to the habit tracker!\n\n" +
			"Tap the button below to open the app and start tracking your habits.",
	},
	StartButton: {
		"ru": "📊 Открыть трекер привычек",
		"en": "📊 Open habit tracker",
	},
	HelpText: {
		"ru": "📚 Помощь по использованию трекера привычек:\n\n" +
			"• Нажмите кнопку 'Открыть трекер привычек' для запуска приложения\n" +
			"• В приложении вы можете:\n" +
			"  - Отмечать выполнение привычек каждый день\n" +
			"  - Редактировать названия привычек (клик по названию)\n" +
			"  - Переключаться между месяцами\n" +
			"  - Просматривать статистику и диаграммы\n" +
			"  - Добавлять новые привычки\n\n" +
			"Ваши данные сохраняются автоматически!",
		"en": "📚 How to use the habit tracker:\n\n" +
			"• Tap 'Open habit tracker' to launch the app\n" +
			"• In the app you can:\n" +
			"  - Check off your habits every day\n" +
			"  - Rename a habit by clicking its name\n" +
			"  - Switch between months\n" +
			"  - View statistics and charts\n" +
			"  - Add new habits\n\n" +
			"Your data is saved automatically!",
	},
	CommandStart: {
		"ru": "Открыть трекер привычек",
		"en": "Open the habit tracker",
	},
	CommandHelp: {
		"ru": "Помощь",
		"en": "Help",
	},
	MenuButton: {
		"ru": "Трекер",
		"en": "Tracker",
	},
}

// Supported reports whether the catalog has a full set of messages for language.
func Supported(language string) bool {
	for _, m := range messages {
		if _, ok := m[language]; !ok {
			return false
		}
	}
	return true
}

// Get returns the message in the requested language, falling back to English.
// args are applied with fmt.Sprintf when given.
func Get(language string, id MessageID, args ...any) string {
	m, ok := messages[id]
	if !ok {
		return string(id)
	}
	msg, ok := m[language]
	if !ok {
		msg = m[fallback]
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
