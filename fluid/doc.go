// Package fluid implements Bernoulli's equation along a streamline at
// constant elevation and the volumetric flow rate through a cross-section.
package fluid
