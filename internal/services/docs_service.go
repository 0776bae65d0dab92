package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"zambus/internal/store"
	"zambus/internal/utils"
)

// DocsService renders the e-ticket and payment receipt PDFs a passenger can
// download for a booking.
type DocsService struct {
	Store *store.Store
	// Loader overrides the store lookup in tests.
	Loader func(bookingID string) (ticketDocData, error)
}

type ticketDocData struct {
	BookingID     string
	TicketCode    string
	PassengerName string
	RouteName     string
	Source        string
	Destination   string
	Departure     time.Time
	Seats         []int
	PlateNumber   string
	BusType       string
	TotalAmount   int64
	PaymentStatus string
}

func (s DocsService) GenerateTicket(bookingID string) ([]byte, string, error) {
	data, err := s.loadTicketData(bookingID)
	if err != nil {
		return nil, "", err
	}
	return buildTicketPDF(data)
}

func (s DocsService) GenerateReceipt(bookingID string) ([]byte, string, error) {
	data, err := s.loadTicketData(bookingID)
	if err != nil {
		return nil, "", err
	}
	return buildReceiptPDF(data)
}

func (s DocsService) loadTicketData(bookingID string) (ticketDocData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	var out ticketDocData
	booking, err := s.Store.GetBooking(bookingID)
	if err != nil {
		return out, err
	}
	out.BookingID = booking.ID
	out.TicketCode = booking.TicketCode
	out.Seats = booking.SeatNumbers
	out.TotalAmount = booking.TotalAmount
	out.PaymentStatus = string(booking.PaymentStatus)

	if passenger, err := s.Store.GetUser(booking.PassengerID); err == nil {
		out.PassengerName = passenger.Name
	}
	trip, err := s.Store.GetTrip(booking.TripID)
	if err != nil {
		return out, err
	}
	out.Departure = trip.DepartureTime
	if route, err := s.Store.GetRoute(trip.RouteID); err == nil {
		out.RouteName = route.Name
		out.Source = route.Source
		out.Destination = route.Destination
	}
	if bus, err := s.Store.GetBus(trip.BusID); err == nil {
		out.PlateNumber = bus.PlateNumber
		out.BusType = bus.Type
	}
	return out, nil
}

func buildTicketPDF(d ticketDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ZAMBIAN BUS E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ticket Code : %s", safe(d.TicketCode, "-")),
		fmt.Sprintf("Passenger   : %s", safe(d.PassengerName, "-")),
		fmt.Sprintf("Route       : %s -> %s", safe(d.Source, "-"), safe(d.Destination, "-")),
		fmt.Sprintf("Departure   : %s", d.Departure.Format("2006-01-02 15:04")),
		fmt.Sprintf("Seats       : %s", utils.FormatSeatList(d.Seats)),
		fmt.Sprintf("Bus         : %s (%s)", safe(d.PlateNumber, "-"), safe(d.BusType, "-")),
		fmt.Sprintf("Amount Paid : %s", utils.FormatKwacha(d.TotalAmount)),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Present this ticket code to the driver at boarding. Each seat listed above admits one passenger.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ticket-%s.pdf", safe(d.TicketCode, d.BookingID))
	return buf.Bytes(), filename, nil
}

func buildReceiptPDF(d ticketDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Receipt No : RCP-"+safe(d.TicketCode, d.BookingID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued     : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, safe(d.PassengerName, "-"))
	pdf.Ln(10)

	desc := fmt.Sprintf("Bus ticket %s -> %s (%s), seats %s",
		safe(d.Source, "-"), safe(d.Destination, "-"),
		d.Departure.Format("2006-01-02 15:04"),
		utils.FormatSeatList(d.Seats),
	)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatKwacha(d.TotalAmount))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, "Payment status: "+safe(d.PaymentStatus, "-"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("receipt-%s.pdf", safe(d.TicketCode, d.BookingID))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
