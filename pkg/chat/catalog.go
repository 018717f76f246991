package chat

import (
	"strings"

	"golang.org/x/text/language"
)

// Messages holds the user-facing strings of one language.
type Messages struct {
	// ErrorPrefix starts every synthesized error turn.
	ErrorPrefix string

	// Timeout is the full text of the turn appended when a request cycle
	// runs out of time.
	Timeout string

	// Title and Tagline are printed when the terminal client starts.
	Title   string
	Tagline string

	// Prompt is shown where the user types.
	Prompt string

	// Thinking is shown while a request is in flight.
	Thinking string

	// Busy is shown when input arrives during a request.
	Busy string
}

// Catalog is the resolved set of messages for a locale.
type Catalog struct {
	Tag language.Tag
	Messages
}

var supported = []language.Tag{
	language.Chinese,
	language.English,
}

var catalogs = map[language.Tag]Messages{
	language.Chinese: {
		ErrorPrefix: "抱歉，发生了错误。",
		Timeout:     "抱歉，请求超时，请稍后重试。",
		Title:       "BotChat",
		Tagline:     "由先进AI技术驱动",
		Prompt:      "输入您的问题...",
		Thinking:    "思考中...",
		Busy:        "请等待当前回复完成。",
	},
	language.English: {
		ErrorPrefix: "Sorry, something went wrong.",
		Timeout:     "Sorry, the request timed out. Please try again.",
		Title:       "BotChat",
		Tagline:     "Powered by advanced AI",
		Prompt:      "Ask a question...",
		Thinking:    "Thinking...",
		Busy:        "Please wait for the current reply.",
	},
}

var matcher = language.NewMatcher(supported)

// NewCatalog returns the catalog that best matches the BCP 47 locale list,
// for example "en-US" or "zh-Hans,en;q=0.8". Unknown or empty locales fall
// back to Chinese.
func NewCatalog(locale string) *Catalog {
	_, idx := language.MatchStrings(matcher, strings.TrimSpace(locale))
	tag := supported[idx]
	return &Catalog{Tag: tag, Messages: catalogs[tag]}
}

// ErrorText formats the content of an error turn: the prefix, the failure
// message and, when known, the proxy's error label in parentheses.
func (c *Catalog) ErrorText(message, detail string) string {
	var sb strings.Builder
	sb.WriteString(c.ErrorPrefix)
	if message != "" {
		sb.WriteString(" ")
		sb.WriteString(message)
	}
	if detail != "" {
		sb.WriteString(" (")
		sb.WriteString(detail)
		sb.WriteString(")")
	}
	return sb.String()
}
