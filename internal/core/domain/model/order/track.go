package order

// Track is one of the two disjoint status progressions. It is fixed at
// checkout from the order's line items and never changes.
type Track int

const (
	// TrackRetail is used by orders made only of physical products.
	TrackRetail Track = iota + 1
	// TrackService is used by orders containing the document-verification service.
	TrackService
)

// TrackOf returns the track for an order with the given service flag.
func TrackOf(isServiceOrder bool) Track {
	if isServiceOrder {
		return TrackService
	}
	return TrackRetail
}

// Initial returns the status an order starts in on this track.
func (t Track) Initial() Status {
	if t == TrackService {
		return AwaitingDocument
	}
	return Pending
}

// Statuses returns every status of the track, in workflow order.
func (t Track) Statuses() []Status {
	switch t {
	case TrackRetail:
		return []Status{Pending, Processing, Shipped, Completed, Cancelled}
	case TrackService:
		return []Status{
			AwaitingDocument,
			DocumentSubmitted,
			DocumentInReview,
			ReportReadyAwaitingPayment,
			PaymentConfirmed,
			ReportDownloaded,
			Cancelled,
		}
	}
	return nil
}

func (t Track) String() string {
	switch t {
	case TrackRetail:
		return "retail"
	case TrackService:
		return "service"
	}
	return "unknown"
}
