package models

import (
	"strconv"
	"time"
)

// DocumentField is one label/value pair of a printable receipt. Field
// order matters to the renderer, so documents carry a slice, not a map.
type DocumentField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ReceiptDocument is the renderer-facing view of a single ledger record:
// a title, the record date and an ordered list of fields. The renderer
// has no knowledge of ledger semantics.
type ReceiptDocument struct {
	Title  string          `json:"title"`
	Date   time.Time       `json:"date"`
	Fields []DocumentField `json:"fields"`
}

const documentDateLayout = "2006-01-02"

// Document builds the printable receipt for a booking.
func (b *Booking) Document() ReceiptDocument {
	fields := []DocumentField{
		{Label: "Receipt Number", Value: b.ReceiptCode},
		{Label: "Customer Name", Value: b.CustomerName},
	}
	if b.Contact != nil {
		fields = append(fields, DocumentField{Label: "Contact", Value: *b.Contact})
	}
	fields = append(fields,
		DocumentField{Label: "Irumudi Price", Value: "Rs. " + b.UnitPrice.String()},
		DocumentField{Label: "Irumudi Quantity", Value: strconv.Itoa(b.Quantity)},
		DocumentField{Label: "Schedule Date", Value: b.ScheduledDate.Format(documentDateLayout)},
		DocumentField{Label: "Scheduled Time", Value: b.ScheduledTime},
		DocumentField{Label: "Total Amount", Value: "Rs. " + b.TotalAmount.String()},
		DocumentField{Label: "Amount Paid", Value: "Rs. " + b.AmountPaid.String()},
		DocumentField{Label: "Balance", Value: "Rs. " + b.Balance.String()},
	)
	return ReceiptDocument{Title: "IRUMUDI SCHEDULE", Date: b.CreatedDate, Fields: fields}
}

// SettlementDocument builds the balance-paid receipt issued when a
// booking settles. Only meaningful once Status is BookingStatusSettled.
func (b *Booking) SettlementDocument() ReceiptDocument {
	code := ""
	if b.BalanceReceiptCode != nil {
		code = *b.BalanceReceiptCode
	}
	date := b.CreatedDate
	if b.SettlementDate != nil {
		date = *b.SettlementDate
	}
	fields := []DocumentField{
		{Label: "Balance Receipt Number", Value: code},
		{Label: "Customer Name", Value: b.CustomerName},
		{Label: "Total Amount", Value: "Rs. " + b.TotalAmount.String()},
		{Label: "Amount Paid", Value: "Rs. " + b.AmountPaid.String()},
		{Label: "Balance", Value: "Rs. " + b.Balance.String()},
	}
	return ReceiptDocument{Title: "BALANCE PAID RECEIPT", Date: date, Fields: fields}
}

// Document builds the printable receipt for a simple-stream record.
func (r *SimpleReceipt) Document() ReceiptDocument {
	title := "MAALADHARANE / ARCHANE"
	switch r.Stream {
	case StreamGheeCoconut:
		title = "GHEE / COCONUT"
	case StreamDonation:
		title = "DONATION"
	}
	fields := []DocumentField{
		{Label: "Receipt Number", Value: r.ReceiptCode},
		{Label: "Customer Name", Value: r.CustomerName},
	}
	if r.Contact != nil {
		fields = append(fields, DocumentField{Label: "Contact", Value: *r.Contact})
	}
	fields = append(fields, DocumentField{Label: "Total Amount", Value: "Rs. " + r.TotalAmount.String()})
	return ReceiptDocument{Title: title, Date: r.CreatedDate, Fields: fields}
}

// Document builds the printable receipt for a merchandise sale, one field
// per line item in sale order.
func (s *MerchandiseSale) Document() ReceiptDocument {
	fields := []DocumentField{
		{Label: "Receipt Number", Value: s.ReceiptCode},
	}
	for _, li := range s.LineItems {
		fields = append(fields, DocumentField{
			Label: li.ItemName,
			Value: strconv.Itoa(li.Quantity) + " x Rs. " + li.UnitPriceAtSale.String() + " = Rs. " + li.LineTotal.String(),
		})
	}
	fields = append(fields, DocumentField{Label: "Total Amount", Value: "Rs. " + s.TotalAmount.String()})
	return ReceiptDocument{Title: "ITEMS CONTENTS", Date: s.CreatedDate, Fields: fields}
}
