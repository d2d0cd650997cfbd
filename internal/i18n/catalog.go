package i18n

import "golang.org/x/text/language"

// Key names a localizable message.
type Key string

const (
	KeyTrialBanner     Key = "trial_banner"
	KeyQuotaExceeded   Key = "quota_exceeded"
	KeyEmptyState      Key = "empty_state"
	KeyPlaceholder     Key = "placeholder"
	KeySend            Key = "send"
	KeySending         Key = "sending"
	KeySubscribeTitle  Key = "subscribe_title"
	KeyAmount          Key = "amount"
	KeyPay             Key = "pay"
	KeyPaySBP          Key = "pay_sbp"
	KeyAutoRenew       Key = "auto_renew"
	KeyAutoRenewOn     Key = "auto_renew_on"
	KeyErrorPrefix     Key = "error_prefix"
	KeyEchoPrefix      Key = "echo_prefix"
	KeyPaymentAccepted Key = "payment_accepted"
)

// Supported locale codes. Only ru and tr carry their own catalogs; every
// other value, recognized or not, resolves to the default text.
const (
	LocaleRU = "ru"
	LocaleEN = "en"
	LocaleDE = "de"
	LocaleES = "es"
	LocaleTR = "tr"
)

var supportedTags = []language.Tag{
	language.English, // fallback
	language.Russian,
	language.German,
	language.Spanish,
	language.Turkish,
}

var supportedCodes = []string{LocaleEN, LocaleRU, LocaleDE, LocaleES, LocaleTR}

var matcher = language.NewMatcher(supportedTags)

// Normalize maps a raw locale tag ("ru-RU", "TR", an Accept-Language value)
// onto one of the supported codes. Unrecognized input yields "en".
func Normalize(raw string) string {
	tag, err := language.Parse(raw)
	if err != nil {
		return LocaleEN
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return LocaleEN
	}
	return supportedCodes[idx]
}

// defaultCatalog is the explicit fallback entry of the lookup table. de, es
// and every unknown locale land here; no per-locale text exists for them.
var defaultCatalog = map[Key]string{
	KeyTrialBanner:     "You are using a trial with GPT-4 (old model). 50 words available for free.",
	KeyQuotaExceeded:   "Only 50 words available in trial. Please subscribe to continue.",
	KeyEmptyState:      "Start chatting — send a message below",
	KeyPlaceholder:     "Write a message...",
	KeySend:            "Send",
	KeySending:         "Sending...",
	KeySubscribeTitle:  "Subscription — 199₽ / month (currency converted)",
	KeyAmount:          "Amount",
	KeyPay:             "Pay",
	KeyPaySBP:          "Pay via SBP",
	KeyAutoRenew:       "Enable auto-renew",
	KeyAutoRenewOn:     "Auto-renew enabled",
	KeyErrorPrefix:     "Error",
	KeyEchoPrefix:      "Echo",
	KeyPaymentAccepted: "Payment of %v — mock.",
}

var catalogs = map[string]map[Key]string{
	LocaleRU: {
		KeyTrialBanner:     "Вы используете пробную версию с GPT-4 (устаревшая модель). Доступно 50 слов бесплатно.",
		KeyQuotaExceeded:   "Доступно только 50 слов в пробной версии. Оплатите подписку для продолжения.",
		KeyEmptyState:      "Начните общение — отправьте сообщение ниже",
		KeyPlaceholder:     "Напишите сообщение...",
		KeySend:            "Отправить",
		KeySending:         "Отправка...",
		KeySubscribeTitle:  "Оформить подписку — 199₽ / мес (курс конвертируется)",
		KeyAmount:          "Сумма",
		KeyPay:             "Оплатить",
		KeyPaySBP:          "Оплатить через СБП",
		KeyAutoRenew:       "Подключить автосписание",
		KeyAutoRenewOn:     "Автосписание подключено",
		KeyErrorPrefix:     "Ошибка",
		KeyEchoPrefix:      "Эхо",
		KeyPaymentAccepted: "Платёж на %v — заглушка.",
	},
	LocaleTR: {
		KeyTrialBanner:     "Eski model GPT-4 ile deneme sürümünü kullanıyorsunuz. 50 kelime ücretsiz.",
		KeyQuotaExceeded:   "Deneme sürümünde yalnızca 50 kelime kullanılabilir. Devam etmek için abone olun.",
		KeyEmptyState:      "Sohbete başlayın — aşağıya mesaj yazın",
		KeyPlaceholder:     "Bir mesaj yazın...",
		KeySend:            "Gönder",
		KeySending:         "Gönderiliyor...",
		KeySubscribeTitle:  "Abonelik — Aylık 199₽ (kur çevrilir)",
		KeyAmount:          "Tutar",
		KeyPay:             "Öde",
		KeyPaySBP:          "SBP ile Öde",
		KeyAutoRenew:       "Otomatik ödeme etkinleştir",
		KeyAutoRenewOn:     "Otomatik ödeme etkinleştirildi",
		KeyErrorPrefix:     "Hata",
		KeyEchoPrefix:      "Yankı",
		KeyPaymentAccepted: "%v tutarında ödeme — taslak.",
	},
}

// T resolves the display text for a message key in the given locale.
// Missing locales and missing entries fall back to the default catalog.
func T(locale string, key Key) string {
	if c, ok := catalogs[locale]; ok {
		if s, ok := c[key]; ok {
			return s
		}
	}
	return defaultCatalog[key]
}
