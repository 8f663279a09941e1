// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis device-token cache keys.
const AuthCachePrefix = "auth:"

// DeviceTokenTTL is how long an issued device token stays valid.
const DeviceTokenTTL = 24 * time.Hour
