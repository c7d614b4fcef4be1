package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/field_codec_mock.go -package=mock

// FieldCodec turns captured field values into the string stored in the
// database and back. It knows nothing about the database or the gate.
//
// Two implementations exist:
//
//	plain  = JSON                                (no passphrase configured)
//	sealed = base64(nonce ‖ AES-GCM(JSON, key))  key = Argon2id(passphrase, salt)
type FieldCodec interface {
	// Seal serializes v to JSON and, for the sealed codec, encrypts it.
	Seal(v any) (string, error)

	// Open reverses Seal and unmarshals the result into target, which must
	// be a non-nil pointer (same as json.Unmarshal).
	Open(blob string, target any) error
}
