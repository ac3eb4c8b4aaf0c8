package catalog

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// SignParams computes the gateway request signature: the shared secret, every
// parameter key and value in sorted key order, and the secret again are
// concatenated and digested with MD5, returned as uppercase hex. An existing
// "sign" entry is excluded from the base string.
func SignParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "sign" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var base strings.Builder
	base.WriteString(secret)
	for _, k := range keys {
		base.WriteString(k)
		base.WriteString(params[k])
	}
	base.WriteString(secret)

	sum := md5.Sum([]byte(base.String()))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
