package integrations_test

import (
	"fmt"

	"github.com/elena-krismer/nightingale/pkg/integrations"
)

func ExampleNormalizeAccession() {
	// Accessions are normalized to the form UniProt prints
	fmt.Println(integrations.NormalizeAccession("p05067"))
	fmt.Println(integrations.NormalizeAccession("  Q9Y6K9  "))
	// Output:
	// P05067
	// Q9Y6K9
}

func ExampleURLEncode() {
	// URL-encode special characters for API queries
	fmt.Println(integrations.URLEncode("consequence type"))
	fmt.Println(integrations.URLEncode("a/b"))
	// Output:
	// consequence+type
	// a%2Fb
}

func Example_errors() {
	// Standard errors for upstream API operations
	fmt.Println("ErrNotFound:", integrations.ErrNotFound)
	fmt.Println("ErrNetwork:", integrations.ErrNetwork)
	// Output:
	// ErrNotFound: resource not found
	// ErrNetwork: network error
}
