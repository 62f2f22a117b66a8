/*
File    : slayscript/std/azure.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

summon_azure_realm: a stub that honors the registration shape and error
kind of the original's M365/Graph administration layer (original_source
m365.py) without reimplementing it — real authentication needs MSAL/Graph
credentials absent from this environment.
*/
package std

import (
	"fmt"

	"github.com/akashmaji946/slayscript/objects"
	"github.com/akashmaji946/slayscript/slayerr"
)

func init() {
	add("summon_azure_realm", objects.ExactArity(3), summonAzureRealm)
}

func summonAzureRealm(rt objects.Runtime, args []objects.GoMixObject) (objects.GoMixObject, error) {
	tenantID, ok1 := args[0].(*objects.String)
	clientID, ok2 := args[1].(*objects.String)
	_, ok3 := args[2].(*objects.String)
	if !ok1 || !ok2 || !ok3 {
		return nil, slayerr.New(slayerr.AzureRealmError, "summon_azure_realm expects three scrolls (tenant, client, secret)", 0, 0)
	}
	return nil, slayerr.New(slayerr.AzureRealmError,
		fmt.Sprintf("no Azure/Graph collaborator configured for tenant %q, client %q", tenantID.Value, clientID.Value), 0, 0)
}
