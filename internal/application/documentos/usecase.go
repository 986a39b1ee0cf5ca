// Package documentos implementa el ciclo de vida de los documentos de origen
// (facturas, devoluciones, traslados y comprobantes de caja) y el protocolo de
// transacción compensatoria que mantiene los logs de movimientos consistentes
// con los documentos vivos.
package documentos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/contable-pro/internal/application/dto"
	"github.com/tu-usuario/contable-pro/internal/domain"
	"github.com/tu-usuario/contable-pro/internal/domain/entity"
	"github.com/tu-usuario/contable-pro/internal/domain/ledger"
	"github.com/tu-usuario/contable-pro/internal/domain/store"
	"github.com/tu-usuario/contable-pro/internal/infrastructure/slotrepo"
	"github.com/tu-usuario/contable-pro/pkg/config"
	"github.com/tu-usuario/contable-pro/pkg/logger"
	"github.com/tu-usuario/contable-pro/pkg/tafqeet"
)

// UseCase guarda y borra documentos de origen. Cada operación arma TODAS sus
// escrituras de ranura (documentos + ambos logs de movimientos) y las aplica
// en un solo lote: o llega completa o no llega.
type UseCase struct {
	store   store.Store
	docs    *slotrepo.Documentos
	stock   *slotrepo.MovimientosStock
	caja    *slotrepo.MovimientosCaja
	monedas config.MonedasConfig
	log     *logger.Logger
}

// New construye el caso de uso.
func New(s store.Store, monedas config.MonedasConfig, log *logger.Logger) *UseCase {
	return &UseCase{
		store:   s,
		docs:    slotrepo.NewDocumentos(s),
		stock:   slotrepo.NewMovimientosStock(s),
		caja:    slotrepo.NewMovimientosCaja(s),
		monedas: monedas,
		log:     log,
	}
}

// GuardarFactura crea o edita una factura o devolución. tipo es uno de
// FACTURA_VENTA, FACTURA_COMPRA, DEVOLUCION_VENTA, DEVOLUCION_COMPRA.
func (uc *UseCase) GuardarFactura(ctx context.Context, tipo string, in dto.FacturaRequest, esEdicion bool) (*dto.DocumentoResponse, error) {
	switch tipo {
	case entity.DocFacturaVenta, entity.DocFacturaCompra,
		entity.DocDevolucionVenta, entity.DocDevolucionCompra:
	default:
		return nil, domain.ErrEntradaInvalida
	}
	if len(in.Lineas) == 0 || in.Parte == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.PagadoPrimario.IsNegative() || in.MontoSecundario.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}

	montoPrimario := decimal.Zero
	lineas := make([]entity.LineaDocumento, 0, len(in.Lineas))
	for _, l := range in.Lineas {
		if l.CodigoArticulo == "" || l.Bodega == "" || !l.Cantidad.IsPositive() || l.Precio.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		lineas = append(lineas, entity.LineaDocumento{
			CodigoArticulo: l.CodigoArticulo,
			NombreArticulo: l.NombreArticulo,
			Unidad:         l.Unidad,
			Bodega:         l.Bodega,
			Cantidad:       l.Cantidad,
			Precio:         l.Precio,
		})
		montoPrimario = montoPrimario.Add(l.Cantidad.Mul(l.Precio))
	}

	doc := entity.Documento{
		ID:              in.ID,
		Tipo:            tipo,
		Fecha:           in.Fecha,
		Parte:           in.Parte,
		Lineas:          lineas,
		MontoPrimario:   montoPrimario,
		MontoSecundario: in.MontoSecundario,
		PagadoPrimario:  in.PagadoPrimario,
		Detalle:         in.Detalle,
	}
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if err := doc.Validar(); err != nil {
		return nil, err
	}

	movStock := movimientosStockDeFactura(doc)
	movCaja := movimientosCajaDeFactura(doc)
	return uc.persistir(ctx, doc, movStock, movCaja, esEdicion)
}

// Traslado crea o edita un traslado entre bodegas. Una sola acción del
// usuario produce exactamente dos movimientos (SALIDA en origen, ENTRADA en
// destino) que comparten el código de traslado como documento de origen.
func (uc *UseCase) Traslado(ctx context.Context, in dto.TrasladoRequest, id string) (*dto.DocumentoResponse, error) {
	if in.CodigoArticulo == "" || in.BodegaOrigen == "" || in.BodegaDestino == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.BodegaOrigen == in.BodegaDestino || !in.Cantidad.IsPositive() {
		return nil, domain.ErrEntradaInvalida
	}

	esEdicion := id != ""
	if id == "" {
		id = uuid.New().String() // código de traslado generado
	}
	doc := entity.Documento{
		ID:    id,
		Tipo:  entity.DocTraslado,
		Fecha: in.Fecha,
		Lineas: []entity.LineaDocumento{{
			CodigoArticulo: in.CodigoArticulo,
			NombreArticulo: in.NombreArticulo,
			Unidad:         in.Unidad,
			Cantidad:       in.Cantidad,
		}},
		Detalle:       in.Detalle,
		BodegaOrigen:  in.BodegaOrigen,
		BodegaDestino: in.BodegaDestino,
	}
	if err := doc.Validar(); err != nil {
		return nil, err
	}

	salida := movimientoStock(doc, doc.Lineas[0], entity.MovimientoSALIDA, in.BodegaOrigen)
	entrada := movimientoStock(doc, doc.Lineas[0], entity.MovimientoENTRADA, in.BodegaDestino)
	return uc.persistir(ctx, doc, []entity.MovimientoStock{salida, entrada}, nil, esEdicion)
}

// GuardarComprobante crea o edita un comprobante de caja. tipo es RECIBO_CAJA
// o PAGO_CAJA.
func (uc *UseCase) GuardarComprobante(ctx context.Context, tipo string, in dto.ComprobanteRequest, esEdicion bool) (*dto.DocumentoResponse, error) {
	if tipo != entity.DocReciboCaja && tipo != entity.DocPagoCaja {
		return nil, domain.ErrEntradaInvalida
	}
	if !in.Monto.IsPositive() {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Moneda != entity.MonedaPrimaria && in.Moneda != entity.MonedaSecundaria {
		return nil, domain.ErrEntradaInvalida
	}

	doc := entity.Documento{
		ID:      in.ID,
		Tipo:    tipo,
		Fecha:   in.Fecha,
		Parte:   in.Parte,
		Detalle: in.Detalle,
	}
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if in.Moneda == entity.MonedaPrimaria {
		doc.MontoPrimario = in.Monto
	} else {
		doc.MontoSecundario = in.Monto
	}
	if err := doc.Validar(); err != nil {
		return nil, err
	}

	clase, direccion := entity.ClaseRecibo, entity.DireccionRecibido
	if tipo == entity.DocPagoCaja {
		clase, direccion = entity.ClasePago, entity.DireccionPagado
	}
	mov := entity.MovimientoCaja{
		ID:                uuid.New().String(),
		Fecha:             doc.Fecha,
		Parte:             doc.Parte,
		Moneda:            in.Moneda,
		Direccion:         direccion,
		Monto:             in.Monto,
		Clase:             clase,
		DocumentoOrigenID: doc.ID,
		Categoria:         doc.Categoria(),
		Detalle:           doc.Detalle,
	}
	return uc.persistir(ctx, doc, nil, []entity.MovimientoCaja{mov}, esEdicion)
}

// Eliminar borra un documento y todos los movimientos que generó (la
// compensación sin reemplazo). Estado terminal: no hay restauración.
func (uc *UseCase) Eliminar(ctx context.Context, id string) (*dto.DocumentoResponse, error) {
	existente, err := uc.docs.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.ErrNoEncontrado
	}

	logStock, err := uc.stock.Listar(ctx)
	if err != nil {
		return nil, err
	}
	logCaja, err := uc.caja.Listar(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := uc.docs.Listar(ctx, "")
	if err != nil {
		return nil, err
	}

	categoria := existente.Categoria()
	logStock, elimStock := ledger.Compensar(logStock, id, categoria, nil)
	logCaja, elimCaja := ledger.Compensar(logCaja, id, categoria, nil)

	restantes := make([]entity.Documento, 0, len(docs))
	for _, d := range docs {
		if d.ID != id {
			restantes = append(restantes, d)
		}
	}

	resp := &dto.DocumentoResponse{Documento: *existente}
	if elimStock+elimCaja == 0 {
		resp.Advertencia = domain.ErrCompensacionVacia.Error()
		uc.log.Warn().Str("documento", id).Str("categoria", categoria).
			Msg("borrado sin movimientos previos que eliminar")
	}

	if err := uc.aplicar(ctx, restantes, logStock, logCaja); err != nil {
		return nil, err
	}
	uc.log.Info().Str("documento", id).Str("tipo", existente.Tipo).
		Int("eliminados", elimStock+elimCaja).Msg("documento borrado")
	return resp, nil
}

// persistir ejecuta el protocolo compartido: estampa el monto en letras,
// compensa ambos logs, actualiza la lista de documentos y aplica el lote.
func (uc *UseCase) persistir(ctx context.Context, doc entity.Documento,
	nuevosStock []entity.MovimientoStock, nuevosCaja []entity.MovimientoCaja,
	esEdicion bool) (*dto.DocumentoResponse, error) {

	docs, err := uc.docs.Listar(ctx, "")
	if err != nil {
		return nil, err
	}

	ahora := time.Now()
	indice := -1
	for i, d := range docs {
		if d.ID == doc.ID {
			indice = i
			break
		}
	}
	if esEdicion {
		if indice < 0 {
			return nil, domain.ErrNoEncontrado
		}
		if docs[indice].Tipo != doc.Tipo {
			return nil, domain.ErrEntradaInvalida
		}
		doc.CreadoEn = docs[indice].CreadoEn
	} else {
		if indice >= 0 {
			return nil, domain.ErrDuplicado
		}
		doc.CreadoEn = ahora
	}
	doc.ActualizadoEn = ahora

	// El monto en letras se regenera en CADA guardado: una edición que cambia
	// el monto jamás deja congelado el texto anterior. Los montos se tratan
	// como unidades enteras; se estampa la parte entera de forma explícita.
	doc.MontoEnLetras = uc.estampar(doc)

	logStock, err := uc.stock.Listar(ctx)
	if err != nil {
		return nil, err
	}
	logCaja, err := uc.caja.Listar(ctx)
	if err != nil {
		return nil, err
	}

	categoria := doc.Categoria()
	logStock, elimStock := ledger.Compensar(logStock, doc.ID, categoria, nuevosStock)
	logCaja, elimCaja := ledger.Compensar(logCaja, doc.ID, categoria, nuevosCaja)

	resp := &dto.DocumentoResponse{
		Documento:        doc,
		MovimientosStock: nuevosStock,
		MovimientosCaja:  nuevosCaja,
	}
	if esEdicion && elimStock+elimCaja == 0 && len(nuevosStock)+len(nuevosCaja) > 0 {
		// El documento existía pero ninguno de sus movimientos apareció en los
		// logs: los saldos venían contando de menos. Se avisa, no se traga.
		resp.Advertencia = domain.ErrCompensacionVacia.Error()
		uc.log.Warn().Str("documento", doc.ID).Str("categoria", categoria).
			Msg("edición sin movimientos previos que eliminar")
	}

	if esEdicion {
		docs[indice] = doc
	} else {
		docs = append(docs, doc)
	}

	if err := uc.aplicar(ctx, docs, logStock, logCaja); err != nil {
		return nil, err
	}
	uc.log.Info().Str("documento", doc.ID).Str("tipo", doc.Tipo).Bool("edicion", esEdicion).
		Int("mov_stock", len(nuevosStock)).Int("mov_caja", len(nuevosCaja)).
		Msg("documento guardado")
	return resp, nil
}

// aplicar arma el lote de las tres ranuras y lo escribe como una unidad.
func (uc *UseCase) aplicar(ctx context.Context, docs []entity.Documento,
	logStock []entity.MovimientoStock, logCaja []entity.MovimientoCaja) error {

	docDocs, err := slotrepo.Codificar(docs)
	if err != nil {
		return err
	}
	docStock, err := slotrepo.Codificar(logStock)
	if err != nil {
		return err
	}
	docCaja, err := slotrepo.Codificar(logCaja)
	if err != nil {
		return err
	}
	return uc.store.Apply(ctx, store.Batch{
		store.SlotDocumentos:       docDocs,
		store.SlotMovimientosStock: docStock,
		store.SlotMovimientosCaja:  docCaja,
	})
}

// estampar devuelve el tafqeet del monto principal del documento: el primario
// si no es cero, si no el secundario con su moneda.
func (uc *UseCase) estampar(doc entity.Documento) string {
	if !doc.MontoPrimario.IsZero() || doc.MontoSecundario.IsZero() {
		return tafqeet.Verbalize(doc.MontoPrimario.IntPart(), uc.monedas.Primaria)
	}
	return tafqeet.Verbalize(doc.MontoSecundario.IntPart(), uc.monedas.Secundaria)
}
