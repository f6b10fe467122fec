//go:build !debug

package assessor

const checksDefault = false
