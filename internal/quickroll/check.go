package quickroll

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	qrerr "github.com/KirkDiggler/quickroll-bot/internal/errors"
)

const (
	msgCheckNotRecognized = "check not recognized, try e.g. 'perc 20'"
	msgLevelOutOfRange    = "standard DCs only available for levels 0–25"
	msgChatUnavailable    = "chat unavailable"
)

var (
	checkPattern            = regexp.MustCompile(`^([a-zA-Z]+)\s+(.+)$`)
	qualifierPattern        = regexp.MustCompile(`(?i)^(dc|lvl|level)\s*[:=]?\s*(\d+)$`)
	compactQualifierPattern = regexp.MustCompile(`(?i)^(dc|lvl|level)(\d+)$`)
	bareLevelPattern        = regexp.MustCompile(`^(\d+)$`)
	checkAnnouncement       = regexp.MustCompile(`^@Check\[([a-z]+)\|dc:(\d+)\]$`)
)

type dcQualifier int

const (
	qualifierLevel dcQualifier = iota
	qualifierDC
)

// FormatCheck builds the canonical check announcement, e.g. "@Check[perception|dc:28]"
func FormatCheck(skill string, dc int) string {
	return fmt.Sprintf("@Check[%s|dc:%d]", skill, dc)
}

// ParseCheck reads a canonical check announcement back into its skill and DC
func ParseCheck(content string) (string, int, bool) {
	match := checkAnnouncement.FindStringSubmatch(content)
	if match == nil {
		return "", 0, false
	}
	dc, err := strconv.Atoi(match[2])
	if err != nil {
		return "", 0, false
	}
	return match[1], dc, true
}

func (p *Parser) parseCheck(ctx context.Context, input string) (string, *qrerr.Error) {
	match := checkPattern.FindStringSubmatch(input)
	if match == nil {
		return "", qrerr.Validation(msgCheckNotRecognized)
	}

	alias := strings.ToLower(match[1])
	remainder := strings.TrimSpace(match[2])

	skill, ok := LookupSkill(alias)
	if !ok {
		return "", qrerr.NotFoundf("unknown skill/save '%s'", alias).WithMeta("token", alias)
	}

	qualifier, valueText, ok := parseCheckRemainder(remainder)
	if !ok {
		return "", qrerr.Validation(msgCheckNotRecognized)
	}

	value, err := strconv.Atoi(valueText)
	if err != nil {
		return "", qrerr.Validation(msgCheckNotRecognized)
	}

	dc := value
	if qualifier == qualifierLevel {
		dc, ok = StandardDC(value)
		if !ok {
			return "", qrerr.OutOfRange(msgLevelOutOfRange).WithMeta("level", value)
		}
	}

	if p.host.Chat == nil {
		log.Println("[QuickRoll] Chat message creation is not available")
		return "", qrerr.Unavailable(msgChatUnavailable)
	}

	content := FormatCheck(skill, dc)
	err = guard("chat", func() error {
		return p.host.Chat.CreateMessage(ctx, ChatMessage{Content: content})
	})
	if err != nil {
		return "", internalError(err)
	}

	return content, nil
}

// parseCheckRemainder reads "dc 19", "lvl:3", "level=4", "dc19" or a bare level
func parseCheckRemainder(remainder string) (dcQualifier, string, bool) {
	match := qualifierPattern.FindStringSubmatch(remainder)
	if match == nil {
		match = compactQualifierPattern.FindStringSubmatch(remainder)
	}
	if match != nil {
		if strings.EqualFold(match[1], "dc") {
			return qualifierDC, match[2], true
		}
		return qualifierLevel, match[2], true
	}

	if bare := bareLevelPattern.FindStringSubmatch(remainder); bare != nil {
		return qualifierLevel, bare[1], true
	}

	return qualifierLevel, "", false
}
