/*
File    : slayscript/std/net.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

summon_portal/seal_portal/fetch_realm: socket and HTTP-GET natives,
grounded on the teacher's std/http.go (net/http client calls, same error-
wrapping shape) and the deleted file/file.go's Opaque-handle pattern for
summon_portal/seal_portal.
*/
package std

import (
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/slayerr"
)

func init() {
	add("summon_portal", objects.ExactArity(1), summonPortal)
	add("seal_portal", objects.ExactArity(1), sealPortal)
	add("fetch_realm", objects.ExactArity(1), fetchRealm)
}

func summonPortal(rt objects.Runtime, args []objects.GoMixObject) (objects.GoMixObject, error) {
	addr, ok := args[0].(*objects.String)
	if !ok {
		return nil, slayerr.New(slayerr.PortalFailure, "summon_portal expects a scroll address", 0, 0)
	}
	conn, err := net.Dial("tcp", addr.Value)
	if err != nil {
		return nil, slayerr.New(slayerr.PortalFailure, err.Error(), 0, 0)
	}
	return &objects.Opaque{Kind: "portal", Handle: conn}, nil
}

func sealPortal(rt objects.Runtime, args []objects.GoMixObject) (objects.GoMixObject, error) {
	h, ok := args[0].(*objects.Opaque)
	if !ok || h.Kind != "portal" {
		return nil, slayerr.New(slayerr.PortalFailure, "seal_portal expects a portal handle", 0, 0)
	}
	if h.Closed {
		return objects.TheVoid, nil
	}
	conn, _ := h.Handle.(net.Conn)
	if conn != nil {
		if err := conn.Close(); err != nil {
			return nil, slayerr.New(slayerr.PortalFailure, err.Error(), 0, 0)
		}
	}
	h.Closed = true
	return objects.TheVoid, nil
}

func fetchRealm(rt objects.Runtime, args []objects.GoMixObject) (objects.GoMixObject, error) {
	url, ok := args[0].(*objects.String)
	if !ok {
		return nil, slayerr.New(slayerr.QuestFailed, "fetch_realm expects a scroll url", 0, 0)
	}
	resp, err := http.Get(url.Value)
	if err != nil {
		return nil, slayerr.New(slayerr.QuestFailed, err.Error(), 0, 0)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, slayerr.New(slayerr.QuestFailed, err.Error(), 0, 0)
	}
	if resp.StatusCode >= 400 {
		return nil, slayerr.New(slayerr.QuestFailed,
			fmt.Sprintf("%s returned status %d", url.Value, resp.StatusCode), 0, 0)
	}
	return &objects.String{Value: string(body)}, nil
}
