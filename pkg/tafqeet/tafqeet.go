// Package tafqeet convierte montos numéricos a su escritura en letras árabes
// ("tafqeet"), tal como se estampa en facturas y comprobantes al momento de
// guardarlos. Es una función pura: las tablas cubren unidades, decenas,
// centenas irregulares y las palabras de magnitud con su gramática de dual y
// plural fracto (ألف / ألفان / آلاف).
package tafqeet

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMontoFraccionario se devuelve cuando el monto a verbalizar tiene parte
// fraccionaria: se rechaza explícitamente en vez de truncar en silencio.
var ErrMontoFraccionario = errors.New("monto fraccionario no admitido")

// Tablas de escritura. Las formas 1..19 y las centenas son irregulares en
// árabe: no se componen dígito a dígito.
var unidades = [20]string{
	"", "واحد", "اثنان", "ثلاثة", "أربعة", "خمسة", "ستة", "سبعة", "ثمانية", "تسعة",
	"عشرة", "أحد عشر", "اثنا عشر", "ثلاثة عشر", "أربعة عشر", "خمسة عشر",
	"ستة عشر", "سبعة عشر", "ثمانية عشر", "تسعة عشر",
}

var decenas = [10]string{
	"", "", "عشرون", "ثلاثون", "أربعون", "خمسون", "ستون", "سبعون", "ثمانون", "تسعون",
}

var centenas = [10]string{
	"", "مئة", "مئتان", "ثلاثمئة", "أربعمئة", "خمسمئة", "ستمئة", "سبعمئة", "ثمانمئة", "تسعمئة",
}

// magnitud formas singular, dual y plural fracto por nivel (10^3, 10^6, 10^9, 10^12).
type magnitud struct {
	singular string
	dual     string
	plural   string
}

var magnitudes = [5]magnitud{
	{}, // nivel 0: sin palabra de magnitud
	{"ألف", "ألفان", "آلاف"},
	{"مليون", "مليونان", "ملايين"},
	{"مليار", "ملياران", "مليارات"},
	{"تريليون", "تريليونان", "تريليونات"},
}

const (
	prefijoNegativo = "سالب "
	cero            = "صفر"
	conjuncion      = " و"
	sufijoCierre    = " فقط لا غير" // "solamente, nada más"
)

// Verbalize convierte un monto entero a letras árabes seguido del nombre de la
// moneda. Cero devuelve "صفر <moneda>" sin sufijo de cierre; los negativos se
// prefijan con "سالب". No se modelan subunidades (centavos/piastras).
func Verbalize(amount int64, currency string) string {
	if amount == 0 {
		return cero + " " + currency
	}
	if amount < 0 {
		return prefijoNegativo + Verbalize(-amount, currency)
	}

	// Descomponer en grupos base 1000, del menos al más significativo.
	var grupos [5]int64
	resto := amount
	for nivel := 0; nivel < len(grupos) && resto > 0; nivel++ {
		grupos[nivel] = resto % 1000
		resto /= 1000
	}

	var partes []string
	for nivel := len(grupos) - 1; nivel >= 0; nivel-- {
		g := grupos[nivel]
		if g == 0 {
			continue
		}
		partes = append(partes, grupo(g, nivel))
	}

	return strings.Join(partes, conjuncion) + " " + currency + sufijoCierre
}

// VerbalizeDecimal es la entrada con guardia para montos decimales: rechaza
// fracciones con ErrMontoFraccionario en vez de redondear en silencio.
func VerbalizeDecimal(amount decimal.Decimal, currency string) (string, error) {
	if !amount.IsInteger() {
		return "", ErrMontoFraccionario
	}
	return Verbalize(amount.IntPart(), currency), nil
}

// grupo escribe un grupo de tres dígitos con su palabra de magnitud.
// La gramática del valor del grupo manda sobre la escritura genérica:
// 1 -> singular solo, 2 -> dual, 3..10 -> cifras + plural fracto,
// >10 -> cifras + singular.
func grupo(g int64, nivel int) string {
	if nivel == 0 {
		return triplete(g)
	}
	m := magnitudes[nivel]
	switch {
	case g == 1:
		return m.singular
	case g == 2:
		return m.dual
	case g >= 3 && g <= 10:
		return triplete(g) + " " + m.plural
	default:
		return triplete(g) + " " + m.singular
	}
}

// triplete escribe un número 1..999: centena irregular, resto 1..19 de la
// tabla de unidades, resto >= 20 como unidad + decena ("خمسة وعشرون").
func triplete(n int64) string {
	c := n / 100
	r := n % 100

	var restoTxt string
	switch {
	case r == 0:
		// solo centena
	case r < 20:
		restoTxt = unidades[r]
	default:
		u := r % 10
		d := r / 10
		if u == 0 {
			restoTxt = decenas[d]
		} else {
			restoTxt = unidades[u] + conjuncion + decenas[d]
		}
	}

	if c == 0 {
		return restoTxt
	}
	if restoTxt == "" {
		return centenas[c]
	}
	return centenas[c] + conjuncion + restoTxt
}
