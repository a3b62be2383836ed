package redis

const (
	// KeyPrefix namespaces every LinkHub key
	KeyPrefix = "linkhub:"
	// KeyProfile holds the JSON-encoded profile
	KeyProfile = KeyPrefix + "profile"
	// KeyShareURL holds the share URL generated on first use
	KeyShareURL = KeyPrefix + "share-url"
)

// ProfileKey returns the Redis key for the profile
func ProfileKey() string {
	return KeyProfile
}

// ShareURLKey returns the Redis key for the cached share URL
func ShareURLKey() string {
	return KeyShareURL
}
