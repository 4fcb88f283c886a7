package utils

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash/crc32"
)

func GetMD5(data []byte) string {
	return fmt.Sprintf("%x", md5.Sum(data))
}

func GetSHA256(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

func GetSHA512(data []byte) string {
	return fmt.Sprintf("%x", sha512.Sum512(data))
}

func GetCRC32(data []byte) string {
	return fmt.Sprintf("%08x", crc32.ChecksumIEEE(data))
}
