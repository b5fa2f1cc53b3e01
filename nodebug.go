//go:build hat_nodebug

package hat

const debugChecks = false

func assert(bool, string, string) {}
