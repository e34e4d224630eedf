// Package ordering provides the one stable sort the diagnostic model
// needs: policy name first, then source position, generalized over any
// caller-supplied key extractor the way the teacher corpus's ordering
// strategy generalizes over discovery-order vs. alphabetical sorts for
// categories and targets.
package ordering
