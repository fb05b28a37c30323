package domain

import (
	"bytes"
	"strconv"
)

// FlexNumber guarda o texto bruto de um campo numérico vindo das APIs de anúncios.
// A Meta envia números como strings ("123.45") e o Google como números JSON; os dois
// formatos são aceitos e a conversão fica a cargo do extrator de métricas.
type FlexNumber string

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			// valor malformado vira vazio e será tratado como zero
			*n = ""
			return nil
		}
		*n = FlexNumber(s)
		return nil
	}

	*n = FlexNumber(data)
	return nil
}

func (n FlexNumber) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(n))), nil
}

func (n FlexNumber) String() string {
	return string(n)
}
