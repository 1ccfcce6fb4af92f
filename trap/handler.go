package trap

// FallbackHandler receives every trap this system does not claim: any
// cause other than illegal instruction, and illegal-instruction faults
// whose word is not a recognized atomic encoding. The frame is the
// original, unmodified context.
type FallbackHandler func(cause Cause, frame *Frame)
