package freight

import (
	"strings"
	"testing"
)

func TestComposeMessage_Template(t *testing.T) {
	catalog := loadedSampleCatalog()
	route, err := FindRoute(catalog, "Santana de Parnaíba", "Catanduva")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msg := ComposeMessage(route, CustomerPJ)

	want := "Carga disponível!\n" +
		"Produto: adubo\n" +
		"Origem: Terminal Santana de Parnaíba (santana de parnaiba)\n" +
		"Destino: Armazém Catanduva (catanduva)\n" +
		"Caminhão: graneleiro\n" +
		"Frete PJ: R$ 600.00"
	if msg != want {
		t.Fatalf("unexpected message:\n%s\nwant:\n%s", msg, want)
	}
}

func TestComposeMessage_TwoDecimalPrice(t *testing.T) {
	route := sampleRoute()
	route.PricePF = 512.5

	msg := ComposeMessage(route, CustomerPF)
	if !strings.Contains(msg, "Frete PF: R$ 512.50") {
		t.Fatalf("expected two-decimal PF price, got:\n%s", msg)
	}
}

func TestComposeMessage_Deterministic(t *testing.T) {
	route := sampleRoute()
	if ComposeMessage(route, CustomerPJ) != ComposeMessage(route, CustomerPJ) {
		t.Fatal("ComposeMessage is not deterministic")
	}
}

func TestComposeMessagesForProduct_BatchJoin(t *testing.T) {
	catalog := loadedSampleCatalog()
	extra := sampleRoute() // second adubo lane
	extra.Destination = "Meridiano"
	extra.UnloadingLocation = "Fazenda Meridiano"
	catalog = append(catalog, extra)

	body := ComposeMessagesForProduct(catalog, "Adubo", CustomerPF)

	parts := strings.Split(body, "\n\n")
	if len(parts) != 2 {
		t.Fatalf("expected 2 messages separated by a blank line, got %d:\n%s", len(parts), body)
	}
	for _, p := range parts {
		if !strings.HasPrefix(p, "Carga disponível!") {
			t.Fatalf("each part must be a full message, got:\n%s", p)
		}
	}
}

func TestComposeMessagesForProduct_UnknownProduct(t *testing.T) {
	if body := ComposeMessagesForProduct(loadedSampleCatalog(), "madeira", CustomerPJ); body != "" {
		t.Fatalf("expected empty batch for unknown product, got:\n%s", body)
	}
}
