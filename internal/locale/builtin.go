package locale

func builtinEnglish() Table {
	return Table{
		KeyGameTitle:        "SKY OVER KHARKIV",
		KeyGameSubtitle:     "Air defense math trainer",
		KeyGameInstructions: "Solve the equation and shoot down the drone carrying the answer",
		KeySelectLevel:      "Select level:",
		KeyLevel1Desc:       "1 - Addition and subtraction",
		KeyLevel2Desc:       "2 - With multiplication",
		KeyLevel3Desc:       "3 - With division",
		KeyPressOptions:     "Press O for options",

		KeyOptions:       "OPTIONS",
		KeyShowBreakdown: "Show equation breakdown",
		KeyAllowNegative: "Allow negative results",
		KeyMusicVolume:   "Volume",
		KeyLanguage:      "Language",
		KeyCloseOptions:  "Press O to close",

		KeyScore: "Score",
		KeyLevel: "Level",

		KeyPaused:      "PAUSED",
		KeyPressResume: "Press SPACE to resume",

		KeyOutOfAmmo: "OUT OF AMMO - Press R to restart",

		KeyLangEnglish:   "English",
		KeyLangPolish:    "Polski",
		KeyLangUkrainian: "Українська",
	}
}

func builtinPolish() Table {
	return Table{
		KeyGameTitle:        "NIEBO NAD CHARKOWEM",
		KeyGameSubtitle:     "Matematyczna obrona przeciwlotnicza",
		KeyGameInstructions: "Rozwiąż równanie i zestrzel drona z poprawnym wynikiem",
		KeySelectLevel:      "Wybierz poziom:",
		KeyLevel1Desc:       "1 - Dodawanie i odejmowanie",
		KeyLevel2Desc:       "2 - Z mnożeniem",
		KeyLevel3Desc:       "3 - Z dzieleniem",
		KeyPressOptions:     "Naciśnij O, aby otworzyć opcje",

		KeyOptions:       "OPCJE",
		KeyShowBreakdown: "Pokaż rozkład równania",
		KeyAllowNegative: "Dozwolone wyniki ujemne",
		KeyMusicVolume:   "Głośność",
		KeyLanguage:      "Język",
		KeyCloseOptions:  "Naciśnij O, aby zamknąć",

		KeyScore: "Wynik",
		KeyLevel: "Poziom",

		KeyPaused:      "PAUZA",
		KeyPressResume: "Naciśnij SPACJĘ, aby kontynuować",

		KeyOutOfAmmo: "BRAK AMUNICJI - Naciśnij R, aby zagrać od nowa",

		KeyLangEnglish:   "English",
		KeyLangPolish:    "Polski",
		KeyLangUkrainian: "Українська",
	}
}

func builtinUkrainian() Table {
	return Table{
		KeyGameTitle:        "НЕБО НАД ХАРКОВОМ",
		KeyGameSubtitle:     "Математичний тренажер ППО",
		KeyGameInstructions: "Розв'яжи рівняння і збий дрон із правильною відповіддю",
		KeySelectLevel:      "Обери рівень:",
		KeyLevel1Desc:       "1 - Додавання і віднімання",
		KeyLevel2Desc:       "2 - З множенням",
		KeyLevel3Desc:       "3 - З діленням",
		KeyPressOptions:     "Натисни O для налаштувань",

		KeyOptions:       "НАЛАШТУВАННЯ",
		KeyShowBreakdown: "Показувати розклад рівняння",
		KeyAllowNegative: "Дозволити від'ємні результати",
		KeyMusicVolume:   "Гучність",
		KeyLanguage:      "Мова",
		KeyCloseOptions:  "Натисни O, щоб закрити",

		KeyScore: "Рахунок",
		KeyLevel: "Рівень",

		KeyPaused:      "ПАУЗА",
		KeyPressResume: "Натисни ПРОБІЛ, щоб продовжити",

		KeyOutOfAmmo: "НЕМАЄ БОЄПРИПАСІВ - Натисни R, щоб почати знову",

		KeyLangEnglish:   "English",
		KeyLangPolish:    "Polski",
		KeyLangUkrainian: "Українська",
	}
}
