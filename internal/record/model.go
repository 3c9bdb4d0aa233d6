package record

// InputRecord agrega os campos já validados. É imutável depois de montado.
type InputRecord struct {
	firstName  string
	lastName   string
	inputPath  string
	outputPath string
	x, y       int32
	password   string
}

// Fields é usado apenas para montar um InputRecord.
type Fields struct {
	FirstName  string
	LastName   string
	InputPath  string
	OutputPath string
	X, Y       int32
	Password   string
}

// NewInputRecord copia os campos para um registro imutável.
func NewInputRecord(f Fields) InputRecord {
	return InputRecord{
		firstName:  f.FirstName,
		lastName:   f.LastName,
		inputPath:  f.InputPath,
		outputPath: f.OutputPath,
		x:          f.X,
		y:          f.Y,
		password:   f.Password,
	}
}

func (r InputRecord) FirstName() string { return r.firstName }
func (r InputRecord) LastName() string { return r.lastName }
func (r InputRecord) InputPath() string { return r.inputPath }
func (r InputRecord) OutputPath() string { return r.outputPath }
func (r InputRecord) X() int32 { return r.x }
func (r InputRecord) Y() int32 { return r.y }
func (r InputRecord) Password() string { return r.password }

// CredentialRecord é o conteúdo gravado no arquivo de saída.
type CredentialRecord struct {
	FirstName    string
	LastName     string
	PasswordHash string
}
