package services

import (
	"regexp"
	"strings"
	"testing"
)

// TestCRC16_KnownVector pins the checksum to the CRC-16/CCITT-FALSE
// reference value for "123456789".
func TestCRC16_KnownVector(t *testing.T) {
	if got := crc16("123456789"); got != 0x29B1 {
		t.Errorf("crc16(\"123456789\") = %04X, want 29B1", got)
	}
}

func TestBuildPayload_EmbedsFields(t *testing.T) {
	p := Payment{
		Key:          "103.646.613-21",
		ReceiverName: "Elnata Oliveira da Rocha",
		City:         "Arapiraca",
		Amount:       100,
		TxID:         "PALESTRAABC123",
	}
	payload := BuildPayload(p)

	for _, want := range []string{
		"br.gov.bcb.pix",
		"103.646.613-21",
		"5303986",    // BRL
		"5406100.00", // amount, two decimals
		"5802BR",
		"Elnata Oliveira da Rocha",
		"Arapiraca",
		"PALESTRAABC123",
	} {
		if !strings.Contains(payload, want) {
			t.Errorf("payload missing %q: %s", want, payload)
		}
	}

	if !regexp.MustCompile(`6304[0-9A-F]{4}$`).MatchString(payload) {
		t.Errorf("payload does not end with CRC block: %s", payload)
	}
}

func TestBuildPayload_ClipsLongNames(t *testing.T) {
	p := Payment{
		Key:          "key",
		ReceiverName: strings.Repeat("N", 40),
		City:         strings.Repeat("C", 30),
		Amount:       55.5,
		TxID:         "T",
	}
	payload := BuildPayload(p)

	if strings.Contains(payload, strings.Repeat("N", 26)) {
		t.Error("receiver name not clipped to 25 chars")
	}
	if strings.Contains(payload, strings.Repeat("C", 16)) {
		t.Error("city not clipped to 15 chars")
	}
	if !strings.Contains(payload, "540555.50") {
		t.Errorf("amount not formatted with two decimals: %s", payload)
	}
}

var txidRE = regexp.MustCompile(`^PALESTRA[0-9A-F]{17}$`)

func TestNewTxID_Format(t *testing.T) {
	id := NewTxID()
	if len(id) != 25 {
		t.Errorf("txid %q has length %d, want 25", id, len(id))
	}
	if !txidRE.MatchString(id) {
		t.Errorf("txid %q does not match PALESTRA[0-9A-F]{17}", id)
	}
}

// TestNewTxID_Unique generates 2000 ids back to back; uuid entropy makes a
// collision effectively impossible, including within the same instant.
func TestNewTxID_Unique(t *testing.T) {
	const n = 2000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := NewTxID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate txid %q on iteration %d", id, i)
		}
		seen[id] = struct{}{}
	}
}
