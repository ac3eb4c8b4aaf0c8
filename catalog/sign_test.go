package catalog

import (
	"regexp"
	"testing"
)

func TestSignParamsKnownVector(t *testing.T) {
	params := map[string]string{
		"method":   "aliexpress.affiliate.product.query",
		"app_key":  "12345",
		"keywords": "desk gadgets",
	}

	got := SignParams(params, "secret")
	want := "2C41FF4180F4B57B9501CDC5B7B58CB5"
	if got != want {
		t.Fatalf("SignParams = %s, want %s", got, want)
	}
}

func TestSignParamsDeterministic(t *testing.T) {
	params := map[string]string{
		"method":      "aliexpress.affiliate.hotproduct.query",
		"app_key":     "key",
		"timestamp":   "2026-01-02 03:04:05",
		"tracking_id": "track",
		"page_size":   "20",
	}

	first := SignParams(params, "s3cr3t")
	second := SignParams(params, "s3cr3t")
	if first != second {
		t.Fatalf("signature not deterministic: %s vs %s", first, second)
	}

	if !regexp.MustCompile(`^[0-9A-F]{32}$`).MatchString(first) {
		t.Fatalf("signature %q is not uppercase hex MD5", first)
	}
}

func TestSignParamsSensitiveToValues(t *testing.T) {
	params := map[string]string{
		"method":  "aliexpress.affiliate.product.query",
		"app_key": "key",
	}
	base := SignParams(params, "secret")

	params["app_key"] = "key2"
	if SignParams(params, "secret") == base {
		t.Fatal("changing a parameter value did not change the signature")
	}

	params["app_key"] = "key"
	if SignParams(params, "othersecret") == base {
		t.Fatal("changing the secret did not change the signature")
	}
}

func TestSignParamsIgnoresExistingSign(t *testing.T) {
	params := map[string]string{"method": "m", "app_key": "k"}
	base := SignParams(params, "secret")

	params["sign"] = "GARBAGE"
	if got := SignParams(params, "secret"); got != base {
		t.Fatalf("existing sign entry changed the signature: %s vs %s", got, base)
	}
}
