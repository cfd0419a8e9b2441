package domain

// Mass is the mass of a single spacecraft module, as read from the manifest.
type Mass int64

// DirectFuel computes the non-recursive fuel requirement for a mass:
// floor(m/3) - 2. The result may be zero or negative for small masses.
func DirectFuel(m Mass) Mass {
	return m/3 - 2
}

// Fuel computes the total fuel required to lift a mass, including the fuel
// needed for the fuel itself. The intermediate value strictly decreases, so
// the recursion always terminates.
func Fuel(m Mass) Mass {
	intermediate := DirectFuel(m)
	if intermediate <= 0 {
		return 0
	}
	return intermediate + Fuel(intermediate)
}

// TotalFuel sums Fuel over a manifest of module masses.
func TotalFuel(masses []Mass) Mass {
	var total Mass
	for _, m := range masses {
		total += Fuel(m)
	}
	return total
}
