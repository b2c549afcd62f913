package entity

// ProviderType identifies where an account's identity was established.
type ProviderType string

const (
	ProviderTypeLocal    ProviderType = "local"
	ProviderTypeGoogle   ProviderType = "google"
	ProviderTypeFirebase ProviderType = "firebase"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IsFederated reports whether the provider is an external identity provider.
func (p ProviderType) IsFederated() bool {
	switch p {
	case ProviderTypeGoogle, ProviderTypeFirebase:
		return true
	default:
		return false
	}
}
