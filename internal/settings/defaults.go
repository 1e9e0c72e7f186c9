package settings

// StorageKey is the fixed key the configuration blob is stored under.
const StorageKey = "yks-countdown-settings"

const (
	DefaultTheme       = ThemeDark
	DefaultColor       = ColorBlue
	DefaultWindowTitle = "YKS Serüveni İlerleme Durumu"
	DefaultWindowStart = "2025-09-01"
	DefaultWindowEnd   = "2026-06-20"
	DefaultWebsiteURL  = "https://azizsancaranadolu.meb.k12.tr/"
)

func defaultSchool() School {
	return School{
		Title:       "Aziz Sancar Anadolu Lisesi",
		Subtitle:    "YKS2026 Geri Sayım",
		Description: "Tekirdağ Kapaklı'da yer alan ve adını Nobel ödüllü bilim insanı Prof. Dr. Aziz Sancar'dan alan okulumuz, akademik başarıyı sosyal sorumlulukla harmanlayan bir eğitim vizyonuna sahiptir.",
		LogoURL:     "https://azizsancaranadolu.meb.k12.tr/meb_iys_dosyalar/59/11/765062/dosyalar/2025_06/04182832_logolar7.png",
	}
}

func defaultWindow() ProgressWindow {
	return ProgressWindow{
		Title: DefaultWindowTitle,
		Start: DefaultWindowStart,
		End:   DefaultWindowEnd,
	}
}

// DefaultSocialLinks returns a fresh copy of the built-in link row.
func DefaultSocialLinks() []SocialLink {
	return []SocialLink{
		{ID: "1", Platform: PlatformWebsite, URL: DefaultWebsiteURL, Label: PlatformWebsite.Label(), IsVisible: true},
		{ID: "2", Platform: PlatformInstagram, URL: "@asalkapakli2019", Label: PlatformInstagram.Label(), IsVisible: true},
		{ID: "3", Platform: PlatformTwitter, URL: "@asalkapakli2019", Label: PlatformTwitter.Label(), IsVisible: true},
		{ID: "4", Platform: PlatformYouTube, URL: "@AzizSancarAnadoluLisesi", Label: PlatformYouTube.Label(), IsVisible: true},
		{ID: "5", Platform: PlatformPhone, URL: "0282 502 2728", Label: PlatformPhone.Label(), IsVisible: true},
	}
}

func defaultExams() []Exam {
	return []Exam{
		{ID: "1", Name: "TYT", StartDate: DefaultWindowStart, Date: "2026-06-20", StartTime: "10:15", EndTime: "13:00", IsVisible: true},
		{ID: "2", Name: "AYT", StartDate: DefaultWindowStart, Date: "2026-06-21", StartTime: "10:15", EndTime: "13:15", IsVisible: true},
		{ID: "3", Name: "YDT", StartDate: DefaultWindowStart, Date: "2026-06-21", StartTime: "15:45", EndTime: "17:45", IsVisible: true},
	}
}

// Defaults returns the built-in configuration. Every call returns a new copy.
func Defaults() Configuration {
	return Configuration{
		Theme:          DefaultTheme,
		ColorKey:       DefaultColor,
		School:         defaultSchool(),
		SocialLinks:    DefaultSocialLinks(),
		ProgressWindow: defaultWindow(),
		Exams:          defaultExams(),
	}
}
