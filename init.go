// Table construction happens in one place so the mask constants are built
// before the attack tables that index them.  File-order init is not enough
// here.

package xiangqi

func init() {
	initMasks()
	initAttacks()
}
