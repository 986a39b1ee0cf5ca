package ledger

// Protocolo de transacción compensatoria: al editar o borrar un documento de
// origen se eliminan del log TODOS los movimientos que generó y se escribe el
// juego nuevo (o ninguno, al borrar). El almacén no tiene claves foráneas ni
// borrado en cascada, así que esta es la única garantía de que el log refleja
// los documentos vivos.

// Compensable lo implementan los movimientos que llevan clave de
// compensación (documento de origen + categoría).
type Compensable interface {
	Origen() (documentoID, categoria string)
}

// Compensar elimina del log todo movimiento cuya pareja (documento,
// categoría) coincide y añade los nuevos al final. Devuelve el log resultante
// y cuántos movimientos previos se eliminaron; el llamador decide si un cero
// inesperado es una advertencia. La categoría evita confundir movimientos de
// otra índole que compartan número de documento.
func Compensar[M Compensable](log []M, documentoID, categoria string, nuevos []M) ([]M, int) {
	out := make([]M, 0, len(log)+len(nuevos))
	eliminados := 0
	for _, m := range log {
		doc, cat := m.Origen()
		if doc == documentoID && cat == categoria {
			eliminados++
			continue
		}
		out = append(out, m)
	}
	out = append(out, nuevos...)
	return out, eliminados
}
