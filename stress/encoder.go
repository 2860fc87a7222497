package stress

// At interactive resolution a field runs to millions of cells; pushing raw
// floats over the websocket is too fat. Cells are quantized to integer
// percent levels of q and delta-encoded per row: neighboring cells differ
// little on a dense grid, so the deltas compress well downstream.

// Levels is the quantization granularity: cell values are reduced to
// integer percent of q.
const Levels = 100

// EncodedField is the wire form of a Field. Each row of Data opens with the
// absolute level of its first cell, followed by the delta to each following
// cell. Levels are bounded by 100, so both fit int8.
type EncodedField struct {
	Rows int     `json:"rows"`
	Cols int     `json:"cols"`
	Q    float64 `json:"q"`
	Data []int8  `json:"data"`
}

func EncodeField(f *Field) EncodedField {
	data := make([]int8, 0, f.Rows*f.Cols)
	scale := float64(Levels) / f.Load.Q
	for iz := 0; iz < f.Rows; iz++ {
		pre := 0
		for ix := 0; ix < f.Cols; ix++ {
			level := int(float64(f.Cells[iz][ix]) * scale)
			data = append(data, int8(level-pre))
			pre = level
		}
	}
	return EncodedField{Rows: f.Rows, Cols: f.Cols, Q: f.Load.Q, Data: data}
}

// DecodeField reverses EncodeField up to quantization error (q/Levels).
func DecodeField(e EncodedField) [][]float32 {
	out := make([][]float32, e.Rows)
	i := 0
	for iz := range out {
		row := make([]float32, e.Cols)
		level := 0
		for ix := 0; ix < e.Cols; ix++ {
			level += int(e.Data[i])
			i++
			row[ix] = float32(float64(level) / Levels * e.Q)
		}
		out[iz] = row
	}
	return out
}
