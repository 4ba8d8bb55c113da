package crypto

import (
	"fmt"

	"go.mozilla.org/pkcs7"
)

// CMSSigner строит отсоединённую PKCS#7/CMS подпись манифеста
type CMSSigner struct {
	bundle *Bundle
}

func NewCMSSigner(b *Bundle) CMSSigner { return CMSSigner{bundle: b} }

// Sign возвращает DER-подпись SignedData поверх байтов манифеста:
// дайджест SHA-256, сертификат подписанта + WWDR в certificate set,
// контент отсоединён. Ошибка подписи — ошибка всего запроса.
func (s CMSSigner) Sign(manifest []byte) ([]byte, error) {
	sd, err := pkcs7.NewSignedData(manifest)
	if err != nil {
		return nil, fmt.Errorf("cms init: %w", err)
	}
	sd.SetDigestAlgorithm(pkcs7.OIDDigestAlgorithmSHA256)
	if err := sd.AddSigner(s.bundle.SignerCert, s.bundle.SignerKey, pkcs7.SignerInfoConfig{}); err != nil {
		return nil, fmt.Errorf("cms add signer: %w", err)
	}
	sd.AddCertificate(s.bundle.WWDRCert)
	sd.Detach()
	der, err := sd.Finish()
	if err != nil {
		return nil, fmt.Errorf("cms finish: %w", err)
	}
	return der, nil
}
