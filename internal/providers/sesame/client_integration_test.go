//go:build integration

package sesame

import (
	"context"
	"math"
	"testing"
)

func TestClient_Resolve_Integration(t *testing.T) {
	client := NewClient()

	t.Logf("Making API call to CDS Sesame...")

	ra, dec, err := client.Resolve(context.Background(), "M31")
	if err != nil {
		t.Fatalf("Failed to resolve M31: %v", err)
	}

	t.Logf("M31: ra=%f dec=%f", ra, dec)

	if math.Abs(ra-10.6847) > 0.01 || math.Abs(dec-41.2688) > 0.01 {
		t.Errorf("unexpected position for M31: ra=%f dec=%f", ra, dec)
	}
}
