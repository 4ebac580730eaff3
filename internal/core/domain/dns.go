// Package domain contains the core entities and business rules for zonesync.
package domain

// RecordType represents the type of a DNS record (e.g., A, AAAA, MX).
type RecordType string

const (
	// TypeA represents an IPv4 address record.
	TypeA RecordType = "A"
	// TypeAAAA represents an IPv6 address record.
	TypeAAAA RecordType = "AAAA"
	// TypeCNAME represents a canonical name record.
	TypeCNAME RecordType = "CNAME"
	// TypeMX represents a mail exchange record.
	TypeMX RecordType = "MX"
	// TypeTXT represents a text record.
	TypeTXT RecordType = "TXT"
	// TypeNS represents a name server record.
	TypeNS RecordType = "NS"
	// TypeSOA represents a start of authority record.
	TypeSOA RecordType = "SOA"
	// TypePTR represents a pointer record.
	TypePTR RecordType = "PTR"
	// TypeSRV represents a service locator record (RFC 2782).
	TypeSRV RecordType = "SRV"
)

// Ensure describes the desired or discovered state of a record.
type Ensure string

const (
	// EnsurePresent means the record should exist (or was found live).
	EnsurePresent Ensure = "present"
	// EnsureAbsent means the record should be removed.
	EnsureAbsent Ensure = "absent"
)

// Record represents one DNS resource record, either declared as desired state
// or discovered live via zone transfer. Names and content values are kept in
// canonical form: no trailing root dot.
type Record struct {
	Name    string
	TTL     uint32
	Class   string // almost always "IN"
	Type    RecordType
	Content []string // one entry per value; multiple entries only for A records
	Ensure  Ensure

	// Targeting and credentials, supplied by the desired-state declaration.
	Zone    string // zone to transfer and update; mandatory for desired records
	Server  string // authoritative server; empty means the system default resolver
	KeyFile string // update key reference handed to the update transport

	// Live state as last observed. Populated only for records discovered via
	// transcript parsing. A record's type may change between passes, so delete
	// operations must use OldType, never the newly desired type.
	OldType    RecordType
	OldContent []string
}

// Target identifies one (zone, server) pair to transfer. An empty Server means
// the transfer tool uses the system default resolver.
type Target struct {
	Zone   string
	Server string
}

func (t Target) String() string {
	if t.Server == "" {
		return t.Zone
	}
	return t.Zone + "@" + t.Server
}
