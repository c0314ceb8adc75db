// Command selftest replays the documented catalog scenarios against the
// fixed sample catalog: validates every row, quotes one lane and composes
// one dispatch message. Useful as a quick smoke check without a database.
package main

import (
	"fmt"
	"log"

	"frete_dispatch/internal/freight"
)

func main() {
	catalog := freight.SampleCatalog()
	for i := range catalog {
		freight.NormalizeRouteKeys(&catalog[i])
	}

	fmt.Println("Validação das rotas:")
	for _, r := range catalog {
		fmt.Printf("%-22s %-12s %-12s %-12s %s\n",
			r.Origin, r.Destination, r.Product, r.TruckType, freight.Validate(r))
	}

	price, err := freight.Lookup(catalog, "santana de parnaiba", "catanduva", freight.CustomerPF)
	if err != nil {
		log.Fatalf("lookup failed: %v", err)
	}
	fmt.Println("\nConsulta de frete Catanduva PF:")
	fmt.Printf("%.2f\n", price)

	route, err := freight.FindRoute(catalog, "santana de parnaiba", "meridiano")
	if err != nil {
		log.Fatalf("find route failed: %v", err)
	}
	fmt.Println("\nMensagem para motorista Meridiano PJ:")
	fmt.Println(freight.ComposeMessage(route, freight.CustomerPJ))
}
