// Package octocase generates the printable enclosure of a handheld
// device: an octagonal prism shell with face-mounted features (taper
// button, power button, USB-C port, LED holes, speaker grille, acoustic
// microphone mount, interior bosses) driven by a single parameter table.
//
// Geometry is built on the signed distance function kernel of
// github.com/soypat/sdf. All positions are expressed in face-local
// coordinates and converted to the global frame only when a feature
// solid is placed, so feature logic never depends on the enclosure's
// global embedding. Units are millimeters and degrees throughout.
package octocase
