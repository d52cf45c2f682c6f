package webhook

import (
	"encoding/json"
	"maps"
	"time"
)

// Kind tells the receiver how an event relates to earlier deliveries.
type Kind string

const (
	KindNewTransaction       Kind = "new_transaction"
	KindUpdateTransaction    Kind = "update_transaction"
	KindConfirmedTransaction Kind = "confirmed_transaction"
)

// TransferType is the direction of a transfer relative to the wallet.
type TransferType string

const (
	TransferCredit TransferType = "CRD"
	TransferDebit  TransferType = "DBT"
)

// Event is the body POSTed to subscribers. Kind is set by the engine.
type Event struct {
	Wallet string      `json:"wallet" validate:"required"`
	Kind   Kind        `json:"event,omitempty"`
	Data   Transaction `json:"data"`
}

// Transaction is the normalized transaction produced by a chain handler.
// Chain-specific fields that have no dedicated field travel in Extra and are
// flattened into the JSON object.
type Transaction struct {
	TxID          string       `json:"txID" validate:"required"`
	Amount        float64      `json:"amount"`
	AmountUSD     float64      `json:"amountUSD"`
	Coin          string       `json:"coin"`
	Confirmations int          `json:"confirmations" validate:"gte=0"`
	Confirmed     bool         `json:"confirmed"`
	Address       string       `json:"address"`
	Fee           float64      `json:"fee"`
	Network       string       `json:"network"`
	SowAt         time.Time    `json:"sowAt"`
	Type          TransferType `json:"type" validate:"omitempty,oneof=CRD DBT"`

	Extra map[string]any `json:"-"`
}

// transaction has the JSON layout of Transaction without its methods.
type transaction Transaction

var knownFields = map[string]struct{}{
	"txID": {}, "amount": {}, "amountUSD": {}, "coin": {}, "confirmations": {},
	"confirmed": {}, "address": {}, "fee": {}, "network": {}, "sowAt": {}, "type": {},
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	body, err := json.Marshal(transaction(t))
	if err != nil || len(t.Extra) == 0 {
		return body, err
	}

	fields := make(map[string]json.RawMessage, len(knownFields)+len(t.Extra))
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}

	for k, v := range t.Extra {
		if _, ok := knownFields[k]; ok {
			continue
		}

		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		fields[k] = raw
	}

	return json.Marshal(fields)
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var known transaction
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	maps.DeleteFunc(fields, func(k string, _ json.RawMessage) bool {
		_, ok := knownFields[k]
		return ok
	})

	if len(fields) > 0 {
		known.Extra = make(map[string]any, len(fields))
		for k, raw := range fields {
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			known.Extra[k] = v
		}
	}

	*t = Transaction(known)
	return nil
}

// kindFor derives the event kind from the transaction and whether a
// delivery record already exists for the destination.
func kindFor(tx Transaction, recorded bool) Kind {
	switch {
	case tx.Confirmed:
		return KindConfirmedTransaction
	case recorded:
		return KindUpdateTransaction
	default:
		return KindNewTransaction
	}
}
