package glw

import (
	"unsafe"
)

type IndexSliceUint8 []uint8

func (i IndexSliceUint8) Bytes() []byte {
	return []byte(i)
}

func (i IndexSliceUint8) IndexType() Type {
	return UnsignedByte
}

func (i IndexSliceUint8) Len() int {
	return len(i)
}

type IndexSliceUint16 []uint16

func (i IndexSliceUint16) Bytes() []byte {
	if len(i) == 0 {
		return nil
	}
	size := len(i) * int(unsafe.Sizeof(uint16(1)))
	return ToBytes(unsafe.Pointer(&i[0]), size)
}

func (i IndexSliceUint16) IndexType() Type {
	return UnsignedShort
}

func (i IndexSliceUint16) Len() int {
	return len(i)
}

type IndexSliceUint32 []uint32

func (i IndexSliceUint32) Bytes() []byte {
	if len(i) == 0 {
		return nil
	}
	size := len(i) * int(unsafe.Sizeof(uint32(1)))
	return ToBytes(unsafe.Pointer(&i[0]), size)
}

func (i IndexSliceUint32) IndexType() Type {
	return UnsignedInt
}

func (i IndexSliceUint32) Len() int {
	return len(i)
}

// Float32Vertices is tightly packed float32 vertex data, each vertex made of
// the components listed in Layout, in order.
type Float32Vertices struct {
	Data []float32
	// Layout is the number of components of each attribute, attribute i is bound to index i
	Layout []int32
}

func (v *Float32Vertices) Bytes() []byte {
	if len(v.Data) == 0 {
		return nil
	}
	return ToBytes(unsafe.Pointer(&v.Data[0]), len(v.Data)*int(unsafe.Sizeof(float32(0))))
}

func (v *Float32Vertices) Attributes() []VertexAttrib {
	var stride int32
	for _, n := range v.Layout {
		stride += n * int32(Float.Size())
	}
	attrs := make([]VertexAttrib, len(v.Layout))
	var offset uintptr
	for i, n := range v.Layout {
		attrs[i] = VertexAttrib{
			Index:  uint32(i),
			Size:   n,
			Type:   Float,
			Stride: stride,
			Offset: offset,
		}
		offset += uintptr(n) * uintptr(Float.Size())
	}
	return attrs
}
