package entity

// Identity is the opaque principal handle of an authenticated caller,
// produced by the session identity provider. The zero value means no
// identity is present.
type Identity string

// String returns the principal text.
func (i Identity) String() string {
	return string(i)
}

// IsZero reports whether no identity is present.
func (i Identity) IsZero() bool {
	return i == ""
}
