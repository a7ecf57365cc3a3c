package service

import "errors"

// ErrInvalidInput membungkus semua kesalahan input pemanggil (juz di luar
// 1..30, seleksi kosong, hafalan negatif, target harian < 1). Pesan lengkapnya
// selalu menyebut nilai yang salah.
var ErrInvalidInput = errors.New("invalid input")
