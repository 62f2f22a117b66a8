/*
File    : slayscript/std/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

read_scroll/etch_scroll: whole-file read/write natives, adapted from the
teacher's deleted file/file.go stateful fopen/fclose handle API down to
the simple whole-file os.ReadFile/os.WriteFile SPEC_FULL.md's native
table calls for.
*/
package std

import (
	"os"

	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/slayerr"
)

func init() {
	add("read_scroll", objects.ExactArity(1), readScroll)
	add("etch_scroll", objects.ExactArity(2), etchScroll)
}

func readScroll(rt objects.Runtime, args []objects.GoMixObject) (objects.GoMixObject, error) {
	path, ok := args[0].(*objects.String)
	if !ok {
		return nil, slayerr.New(slayerr.ScrollDamaged, "read_scroll expects a scroll path", 0, 0)
	}
	data, err := os.ReadFile(path.Value)
	if err != nil {
		return nil, slayerr.New(slayerr.ScrollDamaged, err.Error(), 0, 0)
	}
	return &objects.String{Value: string(data)}, nil
}

func etchScroll(rt objects.Runtime, args []objects.GoMixObject) (objects.GoMixObject, error) {
	path, ok := args[0].(*objects.String)
	if !ok {
		return nil, slayerr.New(slayerr.ScrollDamaged, "etch_scroll expects a scroll path", 0, 0)
	}
	text, ok := args[1].(*objects.String)
	if !ok {
		return nil, slayerr.New(slayerr.ScrollDamaged, "etch_scroll expects scroll text", 0, 0)
	}
	if err := os.WriteFile(path.Value, []byte(text.Value), 0o644); err != nil {
		return nil, slayerr.New(slayerr.ScrollDamaged, err.Error(), 0, 0)
	}
	return objects.TheVoid, nil
}
