package styles

// Preset is a named set of token colors.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets holds the built-in themes by name.
var Presets = map[string]Preset{
	DefaultPreset.Name:      DefaultPreset,
	DraculaPreset.Name:      DraculaPreset,
	NordPreset.Name:         NordPreset,
	HighContrastPreset.Name: HighContrastPreset,
}

// DefaultPreset matches the dark values the color variables start with.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default sporthub theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:          "#CCCCCC",
		TokenTextSecondary:        "#BBBBBB",
		TokenTextMuted:            "#696969",
		TokenTextDescription:      "#999999",
		TokenTextPlaceholder:      "#777777",
		TokenBorderDefault:        "#696969",
		TokenBorderHighlight:      "#54A0FF",
		TokenStatusSuccess:        "#73F59F",
		TokenStatusWarning:        "#FECA57",
		TokenStatusError:          "#FF8787",
		TokenButtonText:           "#FFFFFF",
		TokenButtonPrimaryBg:      "#1A5276",
		TokenButtonPrimaryFocusBg: "#3498DB",
		TokenOverlayTitle:         "#C9C9C9",
		TokenOverlayBorder:        "#8C8C8C",
		TokenToastSuccess:         "#73F59F",
		TokenToastError:           "#FF8787",
		TokenToastInfo:            "#54A0FF",
		TokenToastWarn:            "#FECA57",
		TokenMatchLive:            "#FF7675",
		TokenMatchScore:           "#FFFFFF",
		TokenMatchFinished:        "#777777",
		TokenMatchUpcoming:        "#89B4FA",
		TokenChatUser:             "#89B4FA",
		TokenChatAssistant:        "#CBA6F7",
		TokenLogDebug:             "#696969",
		TokenLogInfo:              "#89B4FA",
		TokenLogWarn:              "#FECA57",
		TokenLogError:             "#FF8787",
		TokenSpinner:              "#FFFFFF",
	},
}

var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula, dark with vibrant accents",
	Colors: map[ColorToken]string{
		TokenTextPrimary:          "#F8F8F2",
		TokenTextSecondary:        "#F8F8F2",
		TokenTextMuted:            "#6272A4",
		TokenTextDescription:      "#F8F8F2",
		TokenTextPlaceholder:      "#6272A4",
		TokenBorderDefault:        "#6272A4",
		TokenBorderHighlight:      "#BD93F9",
		TokenStatusSuccess:        "#50FA7B",
		TokenStatusWarning:        "#F1FA8C",
		TokenStatusError:          "#FF5555",
		TokenButtonText:           "#282A36",
		TokenButtonPrimaryBg:      "#BD93F9",
		TokenButtonPrimaryFocusBg: "#FF79C6",
		TokenOverlayTitle:         "#F8F8F2",
		TokenOverlayBorder:        "#6272A4",
		TokenToastSuccess:         "#50FA7B",
		TokenToastError:           "#FF5555",
		TokenToastInfo:            "#8BE9FD",
		TokenToastWarn:            "#F1FA8C",
		TokenMatchLive:            "#FF5555",
		TokenMatchScore:           "#F8F8F2",
		TokenMatchFinished:        "#6272A4",
		TokenMatchUpcoming:        "#8BE9FD",
		TokenChatUser:             "#8BE9FD",
		TokenChatAssistant:        "#BD93F9",
		TokenLogDebug:             "#6272A4",
		TokenLogInfo:              "#8BE9FD",
		TokenLogWarn:              "#F1FA8C",
		TokenLogError:             "#FF5555",
		TokenSpinner:              "#FF79C6",
	},
}

var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord, arctic blues",
	Colors: map[ColorToken]string{
		TokenTextPrimary:          "#ECEFF4",
		TokenTextSecondary:        "#E5E9F0",
		TokenTextMuted:            "#4C566A",
		TokenTextDescription:      "#D8DEE9",
		TokenTextPlaceholder:      "#4C566A",
		TokenBorderDefault:        "#4C566A",
		TokenBorderHighlight:      "#88C0D0",
		TokenStatusSuccess:        "#A3BE8C",
		TokenStatusWarning:        "#EBCB8B",
		TokenStatusError:          "#BF616A",
		TokenButtonText:           "#2E3440",
		TokenButtonPrimaryBg:      "#81A1C1",
		TokenButtonPrimaryFocusBg: "#88C0D0",
		TokenOverlayTitle:         "#ECEFF4",
		TokenOverlayBorder:        "#4C566A",
		TokenToastSuccess:         "#A3BE8C",
		TokenToastError:           "#BF616A",
		TokenToastInfo:            "#88C0D0",
		TokenToastWarn:            "#EBCB8B",
		TokenMatchLive:            "#BF616A",
		TokenMatchScore:           "#ECEFF4",
		TokenMatchFinished:        "#4C566A",
		TokenMatchUpcoming:        "#81A1C1",
		TokenChatUser:             "#88C0D0",
		TokenChatAssistant:        "#B48EAD",
		TokenLogDebug:             "#4C566A",
		TokenLogInfo:              "#81A1C1",
		TokenLogWarn:              "#EBCB8B",
		TokenLogError:             "#BF616A",
		TokenSpinner:              "#88C0D0",
	},
}

var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "Maximum contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:          "#FFFFFF",
		TokenTextSecondary:        "#FFFFFF",
		TokenTextMuted:            "#C0C0C0",
		TokenTextDescription:      "#FFFFFF",
		TokenTextPlaceholder:      "#C0C0C0",
		TokenBorderDefault:        "#FFFFFF",
		TokenBorderHighlight:      "#FFFF00",
		TokenStatusSuccess:        "#00FF00",
		TokenStatusWarning:        "#FFFF00",
		TokenStatusError:          "#FF0000",
		TokenButtonText:           "#000000",
		TokenButtonPrimaryBg:      "#FFFFFF",
		TokenButtonPrimaryFocusBg: "#FFFF00",
		TokenOverlayTitle:         "#FFFFFF",
		TokenOverlayBorder:        "#FFFFFF",
		TokenToastSuccess:         "#00FF00",
		TokenToastError:           "#FF0000",
		TokenToastInfo:            "#00FFFF",
		TokenToastWarn:            "#FFFF00",
		TokenMatchLive:            "#FF0000",
		TokenMatchScore:           "#FFFFFF",
		TokenMatchFinished:        "#C0C0C0",
		TokenMatchUpcoming:        "#00FFFF",
		TokenChatUser:             "#00FFFF",
		TokenChatAssistant:        "#FF00FF",
		TokenLogDebug:             "#C0C0C0",
		TokenLogInfo:              "#00FFFF",
		TokenLogWarn:              "#FFFF00",
		TokenLogError:             "#FF0000",
		TokenSpinner:              "#FFFF00",
	},
}
