// seed-certs генерирует самоподписанную связку для локальной разработки:
// signerCert.pem, signerKey.pem и фиктивный WWDR.pem. Боевые пассы
// требуют настоящие сертификаты Apple.
package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"flag"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"time"
)

func main() {
	var dir string
	flag.StringVar(&dir, "dir", "certificates", "output directory")
	flag.Parse()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	wwdrKey, wwdrDER := selfSigned("PassCard Dev Intermediate CA", nil, nil, true)
	wwdrCert, err := x509.ParseCertificate(wwdrDER)
	if err != nil {
		log.Fatalf("parse wwdr: %v", err)
	}
	signerKey, signerDER := selfSigned("Pass Type ID: pass.com.needsomevibe.passcard", wwdrCert, wwdrKey, false)

	writePEM(filepath.Join(dir, "WWDR.pem"), "CERTIFICATE", wwdrDER)
	writePEM(filepath.Join(dir, "signerCert.pem"), "CERTIFICATE", signerDER)
	writePEM(filepath.Join(dir, "signerKey.pem"), "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(signerKey))

	log.Printf("seeded dev certificates in %s", dir)
}

func selfSigned(cn string, parent *x509.Certificate, parentKey *rsa.PrivateKey, isCA bool) (*rsa.PrivateKey, []byte) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(time.Now().UnixNano()),
		Subject:               pkix.Name{CommonName: cn, Organization: []string{"PassCard Dev"}},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().AddDate(1, 0, 0),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		IsCA:                  isCA,
		BasicConstraintsValid: true,
	}
	signCert, signKey := tmpl, key
	if parent != nil {
		signCert, signKey = parent, parentKey
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, signCert, &key.PublicKey, signKey)
	if err != nil {
		log.Fatalf("cert %s: %v", cn, err)
	}
	return key, der
}

func writePEM(path, blockType string, der []byte) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := pem.Encode(f, &pem.Block{Type: blockType, Bytes: der}); err != nil {
		log.Fatalf("pem %s: %v", path, err)
	}
}
