package models

// Field — пара label/value в одном из списков полей pass.json
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Barcode — дескриптор штрих-кода pass.json
type Barcode struct {
	Format          string `json:"format"`
	Message         string `json:"message"`
	MessageEncoding string `json:"messageEncoding"`
}

// PassContent — контент-блок одного вида билета (eventTicket, boardingPass, ...)
type PassContent struct {
	TransitType     string  `json:"transitType,omitempty"`
	HeaderFields    []Field `json:"headerFields"`
	PrimaryFields   []Field `json:"primaryFields"`
	SecondaryFields []Field `json:"secondaryFields"`
	AuxiliaryFields []Field `json:"auxiliaryFields"`
	BackFields      []Field `json:"backFields"`
}

// PassDescriptor — структурная форма pass.json.
// Детерминированно выводится из Ticket; контент-блок заполняется
// ровно для одного вида билета.
type PassDescriptor struct {
	FormatVersion       int       `json:"formatVersion"`
	PassTypeIdentifier  string    `json:"passTypeIdentifier"`
	TeamIdentifier      string    `json:"teamIdentifier"`
	SerialNumber        string    `json:"serialNumber"`
	OrganizationName    string    `json:"organizationName"`
	Description         string    `json:"description"`
	BackgroundColor     string    `json:"backgroundColor"`
	ForegroundColor     string    `json:"foregroundColor"`
	LabelColor          string    `json:"labelColor"`
	LogoText            string    `json:"logoText,omitempty"`
	WebServiceURL       string    `json:"webServiceURL,omitempty"`
	AuthenticationToken string    `json:"authenticationToken,omitempty"`
	Barcodes            []Barcode `json:"barcodes"`
	RelevantDate        string    `json:"relevantDate,omitempty"`
	ExpirationDate      string    `json:"expirationDate,omitempty"`

	EventTicket  *PassContent `json:"eventTicket,omitempty"`
	BoardingPass *PassContent `json:"boardingPass,omitempty"`
	Coupon       *PassContent `json:"coupon,omitempty"`
	StoreCard    *PassContent `json:"storeCard,omitempty"`
	Generic      *PassContent `json:"generic,omitempty"`
}

// Content возвращает заполненный контент-блок дескриптора
func (d *PassDescriptor) Content() *PassContent {
	switch {
	case d.EventTicket != nil:
		return d.EventTicket
	case d.BoardingPass != nil:
		return d.BoardingPass
	case d.Coupon != nil:
		return d.Coupon
	case d.StoreCard != nil:
		return d.StoreCard
	case d.Generic != nil:
		return d.Generic
	}
	return nil
}

// Images — декодированные картинки пасса; nil-поле означает «не передана»
type Images struct {
	Icon       []byte
	Logo       []byte
	Background []byte
	Thumbnail  []byte
	Strip      []byte
}
