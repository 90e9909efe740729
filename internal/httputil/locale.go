package httputil

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// supported are the languages that rejection messages are translated to.
// The first one is the fallback.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.French,
}

var matcher = language.NewMatcher(supported)

// Language returns the best match for the Accept-Language header of the request.
func Language(c *gin.Context) language.Tag {
	tags, _, _ := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
	tag, index, _ := matcher.Match(tags...)

	// Strip extensions the matcher may add to the tag
	if index >= 0 && index < len(supported) {
		return supported[index]
	}

	return tag
}

// Printer returns a printer that formats numbers for the language of the request.
func Printer(c *gin.Context) *message.Printer {
	return message.NewPrinter(Language(c))
}
