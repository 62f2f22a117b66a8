/*
File    : slayscript/slayerr/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package slayerr implements the themed error taxonomy that flows through the
lexer, parser, evaluator, and native-function layer. Every raised condition
is a *slayerr.Error — an ordinary Go error value, never a panic or an
exception-style throw.
*/
package slayerr

import "fmt"

// Kind is a closed enumeration of the error taxonomy (spec.md §7). Each
// entry names the subsystem that raises it.
type Kind string

const (
	// DarkMagicDetected: lexer — unexpected character, unterminated string
	// or block comment.
	DarkMagicDetected Kind = "DarkMagicDetected"
	// SpellMiscast: parser — any grammar violation.
	SpellMiscast Kind = "SpellMiscast"
	// UnknownIncantation: evaluator — reference to an undefined name.
	UnknownIncantation Kind = "UnknownIncantation"
	// ForbiddenMagic: evaluator — type mismatch, bad index, bad arity, bad
	// operator combination, division by zero.
	ForbiddenMagic Kind = "ForbiddenMagic"
	// ProphecyViolation: evaluator — reassigning or deleting a constant.
	ProphecyViolation Kind = "ProphecyViolation"
	// PortalFailure: native — socket/connection failure.
	PortalFailure Kind = "PortalFailure"
	// VoiceSilenced: native — text-to-speech failure.
	VoiceSilenced Kind = "VoiceSilenced"
	// ScrollDamaged: native — file I/O failure.
	ScrollDamaged Kind = "ScrollDamaged"
	// OracleSilent: native — templating/rendering failure.
	OracleSilent Kind = "OracleSilent"
	// QuestFailed: native — HTTP request failure.
	QuestFailed Kind = "QuestFailed"
	// AzureRealmError: native — Azure/M365 administration failure.
	AzureRealmError Kind = "AzureRealmError"
)

// display renders a Kind the way the original Python implementation's
// format_message() does: space-separated words with a trailing "!".
var display = map[Kind]string{
	DarkMagicDetected:  "Dark Magic Detected!",
	SpellMiscast:       "Spell Miscast!",
	UnknownIncantation: "Unknown Incantation!",
	ForbiddenMagic:     "Forbidden Magic!",
	ProphecyViolation:  "Prophecy Violation!",
	PortalFailure:      "Portal Failure!",
	VoiceSilenced:      "Voice Silenced!",
	ScrollDamaged:      "Scroll Damaged!",
	OracleSilent:       "Oracle Silent!",
	QuestFailed:        "Quest Failed!",
	AzureRealmError:    "Azure Realm Error!",
}

// Error is a themed, located error. It implements Go's error interface and
// is the sole channel by which user-visible failures propagate — it is
// structurally distinct from the evaluator's return/break/continue control
// signals (see the eval package), which are never errors.
type Error struct {
	Kind    Kind
	Message string
	Line    int // 0 means "no location" (e.g. a native raised with none)
	Column  int
}

// New constructs an *Error. Line 0 omits the location clause entirely when
// formatted, matching spec.md §7's "optional line, optional column".
func New(kind Kind, message string, line, column int) *Error {
	return &Error{Kind: kind, Message: message, Line: line, Column: column}
}

// Error renders "<Kind>! <message> at line L, column C", omitting the
// location clause when Line is zero — spec.md §7's diagnostic format,
// grounded verbatim on the original's format_message().
func (e *Error) Error() string {
	label, ok := display[e.Kind]
	if !ok {
		label = string(e.Kind) + "!"
	}
	if e.Line == 0 {
		return fmt.Sprintf("%s %s", label, e.Message)
	}
	if e.Column == 0 {
		return fmt.Sprintf("%s %s at line %d", label, e.Message, e.Line)
	}
	return fmt.Sprintf("%s %s at line %d, column %d", label, e.Message, e.Line, e.Column)
}
