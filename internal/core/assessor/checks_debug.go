//go:build debug

package assessor

const checksDefault = true
