/*
File    : slayscript/std/voice.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

whisper: hands text to the Runtime's speech collaborator. A real
text-to-speech engine is an OS-specific external dependency absent from
the corpus, so this registers as a logging stand-in that still exercises
the Runtime.Speak path the `incantation` auto-speak feature also uses.
*/
package std

import (
	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/slayerr"
)

func init() {
	add("whisper", objects.ExactArity(1), whisper)
}

func whisper(rt objects.Runtime, args []objects.GoMixObject) (objects.GoMixObject, error) {
	text, ok := args[0].(*objects.String)
	if !ok {
		return nil, slayerr.New(slayerr.VoiceSilenced, "whisper expects a scroll to speak", 0, 0)
	}
	if err := rt.Speak(text); err != nil {
		return nil, slayerr.New(slayerr.VoiceSilenced, err.Error(), 0, 0)
	}
	return objects.TheVoid, nil
}
