package shaders

import "strings"

// fakeDriver records GPU object lifetimes. Shader sources containing
// badSource fail to compile, and linking fails when linkLog is set.
type fakeDriver struct {
	nextId uint32

	shaders  map[uint32]*fakeShader
	programs map[uint32]*fakeProgram

	compiled []ShaderType
	linkLog  string
	validLog string
	boundId  uint32
}

type fakeShader struct {
	typ    ShaderType
	src    string
	ok     bool
	log    string
	attach int
}

type fakeProgram struct {
	attached []uint32
	linked   bool
	valid    bool
}

const badSource = "SYNTAX_ERROR"

var _ Driver = &fakeDriver{}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		shaders:  map[uint32]*fakeShader{},
		programs: map[uint32]*fakeProgram{},
	}
}

func (d *fakeDriver) liveObjects() int {
	return len(d.shaders) + len(d.programs)
}

func (d *fakeDriver) CreateShader(t ShaderType) uint32 {
	d.nextId++
	d.shaders[d.nextId] = &fakeShader{typ: t}
	return d.nextId
}

func (d *fakeDriver) ShaderSource(id uint32, src string) {
	d.shaders[id].src = src
}

func (d *fakeDriver) CompileShader(id uint32) {

	s := d.shaders[id]
	d.compiled = append(d.compiled, s.typ)

	s.ok = !strings.Contains(s.src, badSource)
	if !s.ok {
		s.log = "0:1(1): error: syntax error in " + s.typ.String() + " shader\x00"
	}
}

func (d *fakeDriver) ShaderCompileStatus(id uint32) bool {
	return d.shaders[id].ok
}

func (d *fakeDriver) ShaderInfoLogLength(id uint32) int32 {
	return int32(len(d.shaders[id].log))
}

func (d *fakeDriver) ShaderInfoLog(id uint32, logLength int32) string {
	return d.shaders[id].log[:logLength]
}

func (d *fakeDriver) DeleteShader(id uint32) {

	if _, ok := d.shaders[id]; !ok {
		panic("double delete of shader")
	}

	delete(d.shaders, id)
}

func (d *fakeDriver) CreateProgram() uint32 {
	d.nextId++
	d.programs[d.nextId] = &fakeProgram{}
	return d.nextId
}

func (d *fakeDriver) AttachShader(progId, shaderId uint32) {

	s, ok := d.shaders[shaderId]
	if !ok {
		panic("attaching unknown shader")
	}

	s.attach++
	d.programs[progId].attached = append(d.programs[progId].attached, shaderId)
}

func (d *fakeDriver) LinkProgram(progId uint32) {
	d.programs[progId].linked = d.linkLog == ""
}

func (d *fakeDriver) ProgramLinkStatus(progId uint32) bool {
	return d.programs[progId].linked
}

func (d *fakeDriver) ValidateProgram(progId uint32) {
	d.programs[progId].valid = d.validLog == ""
}

func (d *fakeDriver) ProgramValidateStatus(progId uint32) bool {
	return d.programs[progId].valid
}

func (d *fakeDriver) programLog(progId uint32) string {

	p := d.programs[progId]
	if !p.linked {
		return d.linkLog
	}

	if !p.valid {
		return d.validLog
	}

	return ""
}

func (d *fakeDriver) ProgramInfoLogLength(progId uint32) int32 {
	return int32(len(d.programLog(progId)))
}

func (d *fakeDriver) ProgramInfoLog(progId uint32, logLength int32) string {
	return d.programLog(progId)[:logLength]
}

func (d *fakeDriver) UseProgram(progId uint32) {
	d.boundId = progId
}

func (d *fakeDriver) DeleteProgram(progId uint32) {

	if _, ok := d.programs[progId]; !ok {
		panic("double delete of program")
	}

	delete(d.programs, progId)
}
