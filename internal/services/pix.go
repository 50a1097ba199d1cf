package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Payment describes the fields embedded in a PIX "copia e cola" payload.
type Payment struct {
	Key          string
	ReceiverName string
	City         string
	Amount       float64
	TxID         string
}

const txIDPrefix = "PALESTRA"

// NewTxID returns a payment reference unique per call. EMV caps the txid
// field at 25 characters, so the uuid is trimmed to fill the remainder.
func NewTxID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return txIDPrefix + raw[:25-len(txIDPrefix)]
}

// BuildPayload assembles the EMV MPM text for a PIX charge. The result is
// what gets rendered as the QR code and shown as the copy-paste string.
func BuildPayload(p Payment) string {
	merchant := emv("00", "br.gov.bcb.pix") + emv("01", p.Key)

	var b strings.Builder
	b.WriteString(emv("00", "01")) // payload format indicator
	b.WriteString(emv("01", "12")) // point of initiation: dynamic, one use
	b.WriteString(emv("26", merchant))
	b.WriteString(emv("52", "0000")) // merchant category: unspecified
	b.WriteString(emv("53", "986"))  // currency: BRL
	b.WriteString(emv("54", fmt.Sprintf("%.2f", p.Amount)))
	b.WriteString(emv("58", "BR"))
	b.WriteString(emv("59", clip(p.ReceiverName, 25)))
	b.WriteString(emv("60", clip(p.City, 15)))
	b.WriteString(emv("62", emv("05", clip(p.TxID, 25))))

	// CRC covers everything up to and including its own id+length.
	payload := b.String() + "6304"
	return payload + fmt.Sprintf("%04X", crc16(payload))
}

func emv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// crc16 is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) as required by the
// PIX payload standard.
func crc16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
