package usecase

import "strings"

// nextID devuelve max(id) + 1, o 1 si la colección está vacía.
func nextID[T any](items []T, id func(T) int) int {
	maxID := 0
	for _, it := range items {
		if v := id(it); v > maxID {
			maxID = v
		}
	}
	return maxID + 1
}

// indexOf posición del primer elemento que cumple match, o -1.
func indexOf[T any](items []T, match func(T) bool) int {
	for i, it := range items {
		if match(it) {
			return i
		}
	}
	return -1
}

// sameKey compara códigos y SKU sin distinguir mayúsculas ni espacios de borde.
func sameKey(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
